package orderRepo

import (
	"context"

	"yourclean/database"
	"yourclean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository stores customer cleaning requests.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRepository backed by MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("yourclean")
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
