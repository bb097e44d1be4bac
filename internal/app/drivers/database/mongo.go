package database

import (
	"context"
	"doctrack-service/internal/app/config"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// NewMongoDB connects with majority writes and primary reads so a conditional
// update followed by a re-read always observes its own result.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	timeout := time.Duration(driverConfig.MongoDB.ConnectTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	dbOptions := options.Client().
		ApplyURI(MongoURI(driverConfig.MongoDB)).
		SetConnectTimeout(timeout).
		SetWriteConcern(writeconcern.Majority()).
		SetReadPreference(readpref.Primary())

	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping mongo primary: %s", err.Error())
	}
	log.Printf("Successfully connected to mongo database %s", driverConfig.MongoDB.DbName)
	return client
}

// MongoURI returns cfg.URI when present, otherwise builds one from the parts.
// Credentials are optional for local single-node setups.
func MongoURI(cfg config.MongoDB) string {
	if cfg.URI != "" {
		return cfg.URI
	}

	host := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	if cfg.Username == "" {
		return fmt.Sprintf("mongodb://%s", host)
	}

	uri := url.URL{
		Scheme: "mongodb",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   host,
		Path:   "/",
	}
	if cfg.AuthSource != "" {
		uri.RawQuery = url.Values{"authSource": []string{cfg.AuthSource}}.Encode()
	}
	return uri.String()
}

// IDFilter matches a profile _id stored either as an ObjectId or as its hex
// string. Doctor and patient documents are written by another service.
func IDFilter(id string) bson.M {
	if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{objectID, id}}}
	}
	return bson.M{"_id": id}
}
