package appointments

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/exceptions"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

var _ contracts.AppointmentRepository = (*AppointmentMongoRepository)(nil)

// EnsureIndexes creates the lookup indexes used by listing and reconciliation.
func (repo *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "paymentReferences", Value: 1}}},
		{Keys: bson.D{{Key: "paymentReference", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "docId", Value: 1}, {Key: "date", Value: -1}}},
	})
	return err
}

func byReference(reference string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"paymentReference": reference},
		bson.M{"paymentReferences": reference},
	}}
}

func (repo *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	_, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return repo.findOne(ctx, bson.M{"_id": appointmentID})
}

func (repo *AppointmentMongoRepository) FindByPaymentReference(ctx context.Context, reference string) (*models.Appointment, error) {
	return repo.findOne(ctx, byReference(reference))
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context, filter contracts.AppointmentFilter) ([]models.Appointment, error) {
	query := bson.M{}
	if filter.PatientID != "" {
		query["userId"] = filter.PatientID
	}
	if filter.DoctorID != "" {
		query["docId"] = filter.DoctorID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := repo.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *AppointmentMongoRepository) updateOne(ctx context.Context, filter, update bson.M) (bool, error) {
	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (repo *AppointmentMongoRepository) MarkCancelled(ctx context.Context, appointmentID, cancelledBy string, at time.Time) (bool, error) {
	filter := bson.M{
		"_id":         appointmentID,
		"cancelled":   false,
		"isCompleted": false,
	}
	update := bson.M{"$set": bson.M{
		"cancelled":   true,
		"cancelledBy": cancelledBy,
		"cancelledAt": at,
		"updatedAt":   at,
	}}
	return repo.updateOne(ctx, filter, update)
}

func (repo *AppointmentMongoRepository) MarkCompleted(ctx context.Context, appointmentID, doctorID string, at time.Time) (bool, error) {
	filter := bson.M{
		"_id":         appointmentID,
		"docId":       doctorID,
		"cancelled":   false,
		"isCompleted": false,
		"payment":     true,
	}
	update := bson.M{"$set": bson.M{
		"isCompleted": true,
		"completedAt": at,
		"updatedAt":   at,
	}}
	return repo.updateOne(ctx, filter, update)
}

func (repo *AppointmentMongoRepository) AttachPaymentAttempt(ctx context.Context, appointmentID string, attempt models.PaymentAttempt, at time.Time) (bool, error) {
	filter := bson.M{
		"_id":       appointmentID,
		"payment":   false,
		"cancelled": false,
	}
	update := bson.M{
		"$set": bson.M{
			"paymentReference":  attempt.Reference,
			"paymentStatus":     constvars.PaymentStatusPending,
			"paymentMethod":     attempt.Method,
			"transactionId":     attempt.TransactionID,
			"transactionStatus": constvars.TransactionStatusPending,
			"updatedAt":         at,
		},
		"$push": bson.M{"paymentReferences": attempt.Reference},
	}
	return repo.updateOne(ctx, filter, update)
}

// MarkPaid is the single settle transition. The payment:false guard makes a
// repeat a no-op, so paymentDate is written once.
func (repo *AppointmentMongoRepository) MarkPaid(ctx context.Context, reference, transactionID string, at time.Time) (bool, error) {
	filter := byReference(reference)
	filter["payment"] = false

	set := bson.M{
		"payment":           true,
		"paymentStatus":     constvars.PaymentStatusPaid,
		"paymentDate":       at,
		"transactionStatus": constvars.TransactionStatusCompleted,
		"updatedAt":         at,
	}
	if transactionID != "" {
		set["transactionId"] = transactionID
	}
	return repo.updateOne(ctx, filter, bson.M{"$set": set})
}

// MarkPaymentFailed only touches the current attempt and never a settled record.
func (repo *AppointmentMongoRepository) MarkPaymentFailed(ctx context.Context, reference, transactionID string, at time.Time) (bool, error) {
	filter := bson.M{
		"paymentReference": reference,
		"payment":          false,
	}
	set := bson.M{
		"paymentStatus":     constvars.PaymentStatusFailed,
		"transactionStatus": constvars.TransactionStatusFailed,
		"updatedAt":         at,
	}
	if transactionID != "" {
		set["transactionId"] = transactionID
	}
	return repo.updateOne(ctx, filter, bson.M{"$set": set})
}
