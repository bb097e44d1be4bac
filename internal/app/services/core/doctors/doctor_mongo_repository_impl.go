package doctors

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/app/drivers/database"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func slotField(slotDate string) string {
	return "slots_booked." + slotDate
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := repo.Collection.FindOne(ctx, database.IDFilter(doctorID), options.FindOne().SetProjection(bson.M{"password": 0})).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

// PushBookedSlot appends in a single conditional update. The filter only
// matches while the doctor is available and slotTime is absent from the
// bucket, so two racing callers cannot both modify the document.
func (repo *DoctorMongoRepository) PushBookedSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error) {
	field := slotField(slotDate)
	filter := database.IDFilter(doctorID)
	filter["available"] = true
	filter[field] = bson.M{"$ne": slotTime}
	update := bson.M{"$push": bson.M{field: slotTime}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

// PullBookedSlot leaves an emptied bucket in place as an empty array.
func (repo *DoctorMongoRepository) PullBookedSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error) {
	field := slotField(slotDate)
	filter := database.IDFilter(doctorID)
	filter[field] = slotTime
	update := bson.M{"$pull": bson.M{field: slotTime}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (repo *DoctorMongoRepository) ToggleAvailability(ctx context.Context, doctorID string) (*models.Doctor, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "available", Value: bson.D{{Key: "$not", Value: bson.A{"$available"}}}}}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var doctor models.Doctor
	err := repo.Collection.FindOneAndUpdate(ctx, database.IDFilter(doctorID), update, opts).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
