package consultations

import (
	"context"
	"time"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

// EnsureIndexes makes the storage layer the source of truth for slot
// exclusivity: two inserts carrying the same (consultationType, slotKey) race
// down to one winner regardless of what the read-then-write fast path saw.
func (r *ConsultationMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "consultationType", Value: 1},
			{Key: "slotKey", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	_, err := r.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *ConsultationMongoRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) (string, error) {
	now := time.Now()
	consultation.CreatedAt = now
	consultation.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrSlotAlreadyBooked()
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConsultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var consultation models.Consultation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) FindActiveByUserAndType(ctx context.Context, userID string, consultationType models.ConsultationType, now time.Time) (*models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"userId":           objectID,
		"endDateTime":      bson.M{"$gt": now},
		"consultationType": consultationType,
	}

	var consultation models.Consultation
	err = r.Collection.FindOne(ctx, filter).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

// FindOverlappingSlot matches any consultation of the category whose stored
// window fits inside the already-truncated boundaries, closed on both ends.
func (r *ConsultationMongoRepository) FindOverlappingSlot(ctx context.Context, consultationType models.ConsultationType, truncStart, truncEnd time.Time, excludeID string) (*models.Consultation, error) {
	filter := bson.M{
		"startDateTime":    bson.M{"$gte": truncStart},
		"endDateTime":      bson.M{"$lte": truncEnd},
		"consultationType": consultationType,
	}
	if excludeID != "" {
		objectID, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		filter["_id"] = bson.M{"$ne": objectID}
	}

	var consultation models.Consultation
	err := r.Collection.FindOne(ctx, filter).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) UpdateWindow(ctx context.Context, consultationID string, start, end time.Time, slotKey string) error {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"startDateTime": start,
			"endDateTime":   end,
			"slotKey":       slotKey,
			"status":        models.ConsultationStatusRescheduled,
			"updatedAt":     time.Now(),
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotAlreadyBooked()
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ConsultationMongoRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.Collection.FindOne(ctx, bson.M{"providerOrderId": providerOrderID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) MarkPaid(ctx context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (bool, error) {
	filter := bson.M{
		"providerOrderId": providerOrderID,
		"paymentStatus":   models.PaymentStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"paymentStatus":       models.PaymentStatusSuccess,
			"status":              models.ConsultationStatusSuccess,
			"providerOrderStatus": providerOrderStatus,
			"providerData":        providerData,
			"updatedAt":           time.Now(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}
