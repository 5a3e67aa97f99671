package travels

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

type TravelMongoRepository struct {
	Collection *mongo.Collection
}

func NewTravelMongoRepository(db *mongo.Client, dbName string) TravelRepository {
	return &TravelMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTravels),
	}
}

func (r *TravelMongoRepository) CreateTravel(ctx context.Context, travel *models.Travel) (string, error) {
	now := time.Now()
	travel.CreatedAt = now
	travel.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, travel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TravelMongoRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Travel, error) {
	var travel models.Travel
	err := r.Collection.FindOne(ctx, bson.M{"providerOrderId": providerOrderID}).Decode(&travel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &travel, nil
}

func (r *TravelMongoRepository) MarkPaid(ctx context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (bool, error) {
	filter := bson.M{
		"providerOrderId": providerOrderID,
		"paymentStatus":   models.PaymentStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"paymentStatus":       models.PaymentStatusSuccess,
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
