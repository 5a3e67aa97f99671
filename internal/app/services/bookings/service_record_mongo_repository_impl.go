package bookings

import (
	"context"
	"time"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceRecordMongoRepository(db *mongo.Client, dbName string) ServiceRecordRepository {
	return &ServiceRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServiceRecords),
	}
}

func (r *ServiceRecordMongoRepository) CreateServiceRecord(ctx context.Context, record *models.ServiceRecord) (string, error) {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ServiceRecordMongoRepository) AttachBooking(ctx context.Context, recordID, bookingID string) error {
	recordObjectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	bookingObjectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"bookingId": bookingObjectID,
			"updatedAt": time.Now(),
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": recordObjectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
