package catalog

import (
	"context"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogMongoRepository struct {
	Services     *mongo.Collection
	ServiceItems *mongo.Collection
	Branches     *mongo.Collection
}

func NewCatalogMongoRepository(db *mongo.Client, dbName string) CatalogRepository {
	database := db.Database(dbName)
	return &CatalogMongoRepository{
		Services:     database.Collection(constvars.MongoCollectionServices),
		ServiceItems: database.Collection(constvars.MongoCollectionServiceItems),
		Branches:     database.Collection(constvars.MongoCollectionBranches),
	}
}

func (r *CatalogMongoRepository) FindServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(serviceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var service models.Service
	err = r.Services.FindOne(ctx, bson.M{"_id": objectID}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (r *CatalogMongoRepository) FindServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var service models.Service
	err := r.Services.FindOne(ctx, bson.M{"slug": slug}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

type serviceItemWithService struct {
	models.ServiceItem `bson:",inline"`
	Service            []models.Service `bson:"service"`
}

// FindServiceItemWithService joins the item to its parent service so callers
// get the delivery-mode tag alongside item pricing in one round trip.
func (r *CatalogMongoRepository) FindServiceItemWithService(ctx context.Context, serviceItemID string) (*models.ServiceItem, *models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(serviceItemID)
	if err != nil {
		return nil, nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": objectID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionServices,
			"localField":   "serviceId",
			"foreignField": "_id",
			"as":           "service",
		}}},
	}

	cursor, err := r.ServiceItems.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []serviceItemWithService
	if err := cursor.All(ctx, &results); err != nil {
		return nil, nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(results) == 0 {
		return nil, nil, nil
	}

	item := results[0].ServiceItem
	if len(results[0].Service) == 0 {
		return &item, nil, nil
	}
	service := results[0].Service[0]
	return &item, &service, nil
}

func (r *CatalogMongoRepository) FindBranchByID(ctx context.Context, branchID string) (*models.Branch, error) {
	objectID, err := primitive.ObjectIDFromHex(branchID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var branch models.Branch
	err = r.Branches.FindOne(ctx, bson.M{"_id": objectID}).Decode(&branch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &branch, nil
}
