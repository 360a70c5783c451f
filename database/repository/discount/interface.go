package discountRepo

import (
	"context"
	"time"

	"yourclean/database"
	"yourclean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DiscountRepository stores calendar discounts.
type DiscountRepository interface {
	List(ctx context.Context) ([]models.DateDiscount, error)
	ListActiveInWindow(ctx context.Context, from, to time.Time) ([]models.DateDiscount, error)
	Create(ctx context.Context, discount models.DateDiscount) (string, error)
	Update(ctx context.Context, discount models.DateDiscount) error
	Delete(ctx context.Context, id string) error
}

type mongoDiscountRepo struct {
	coll *mongo.Collection
}

// NewMongoDiscountRepo returns a DiscountRepository backed by MongoDB.
func NewMongoDiscountRepo() DiscountRepository {
	db := database.MongoClient.Database("yourclean")
	return &mongoDiscountRepo{
		coll: db.Collection("date_discounts"),
	}
}
