package pricingRepo

import (
	"context"

	"yourclean/database"
	"yourclean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingRepository manages the price-band table and the rate-settings
// singleton.
type PricingRepository interface {
	ListBands(ctx context.Context) ([]models.PriceBand, error)
	ListActiveBands(ctx context.Context) ([]models.PriceBand, error)
	GetBandByID(ctx context.Context, id string) (*models.PriceBand, error)
	CreateBand(ctx context.Context, band models.PriceBand) (string, error)
	UpdateBand(ctx context.Context, band models.PriceBand) error
	DeleteBand(ctx context.Context, id string) error

	GetRates(ctx context.Context) (*models.RateSettings, error)
	UpdateRates(ctx context.Context, rates models.RateSettings) error
}

type mongoPricingRepo struct {
	bands *mongo.Collection
	rates *mongo.Collection
}

// NewMongoPricingRepo returns a PricingRepository backed by MongoDB.
func NewMongoPricingRepo() PricingRepository {
	db := database.MongoClient.Database("yourclean")
	return &mongoPricingRepo{
		bands: db.Collection("price_bands"),
		rates: db.Collection("rate_settings"),
	}
}
