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

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.Collection.FindOne(ctx, bson.M{"providerOrderId": providerOrderID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

// MarkPaid flips the payment status of the order's booking from Pending to
// Success in one conditional update. A false return means nothing matched,
// either an unknown order or a transition already applied.
func (r *BookingMongoRepository) MarkPaid(ctx context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (bool, error) {
	filter := bson.M{
		"providerOrderId":      providerOrderID,
		"bookingPaymentStatus": models.PaymentStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"bookingPaymentStatus": models.PaymentStatusSuccess,
			"providerOrderStatus":  providerOrderStatus,
			"providerData":         providerData,
			"updatedAt":            time.Now(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}
