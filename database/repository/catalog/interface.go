package catalogRepo

import (
	"context"

	"yourclean/database"
	"yourclean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository manages extra services and dry-cleaning items.
type CatalogRepository interface {
	ListExtras(ctx context.Context, activeOnly bool) ([]models.ExtraService, error)
	CreateExtra(ctx context.Context, svc models.ExtraService) (string, error)
	UpdateExtra(ctx context.Context, svc models.ExtraService) error
	DeleteExtra(ctx context.Context, id string) error

	ListDryItems(ctx context.Context, activeOnly bool) ([]models.DryCleaningItem, error)
	CreateDryItem(ctx context.Context, item models.DryCleaningItem) (string, error)
	UpdateDryItem(ctx context.Context, item models.DryCleaningItem) error
	DeleteDryItem(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	extras   *mongo.Collection
	dryItems *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("yourclean")
	return &mongoCatalogRepo{
		extras:   db.Collection("extra_services"),
		dryItems: db.Collection("dry_cleaning_items"),
	}
}
