package pricingRepo

import (
	"context"
	"errors"
	"time"

	"yourclean/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListBands returns every configured price band, in scan order.
func (r *mongoPricingRepo) ListBands(ctx context.Context) ([]models.PriceBand, error) {
	return r.findBands(ctx, bson.M{})
}

// ListActiveBands returns only bands participating in lookup.
func (r *mongoPricingRepo) ListActiveBands(ctx context.Context) ([]models.PriceBand, error) {
	return r.findBands(ctx, bson.M{"isActive": true})
}

func (r *mongoPricingRepo) findBands(ctx context.Context, filter bson.M) ([]models.PriceBand, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "level", Value: 1},
		{Key: "sortOrder", Value: 1},
		{Key: "areaFrom", Value: 1},
	})
	cursor, err := r.bands.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bands []models.PriceBand
	if err := cursor.All(ctx, &bands); err != nil {
		return nil, err
	}
	return bands, nil
}

// GetBandByID returns a single band by its ID.
func (r *mongoPricingRepo) GetBandByID(ctx context.Context, id string) (*models.PriceBand, error) {
	var band models.PriceBand
	if err := r.bands.FindOne(ctx, bson.M{"id": id}).Decode(&band); err != nil {
		return nil, err
	}
	return &band, nil
}

// CreateBand inserts a new price band and returns its ID.
func (r *mongoPricingRepo) CreateBand(ctx context.Context, band models.PriceBand) (string, error) {
	if band.ID == "" {
		band.ID = uuid.New().String()
	}
	band.CreatedAt = time.Now()
	band.UpdatedAt = time.Now()

	if _, err := r.bands.InsertOne(ctx, band); err != nil {
		return "", err
	}
	return band.ID, nil
}

// UpdateBand replaces an existing band document.
func (r *mongoPricingRepo) UpdateBand(ctx context.Context, band models.PriceBand) error {
	band.UpdatedAt = time.Now()
	res, err := r.bands.ReplaceOne(ctx, bson.M{"id": band.ID}, band)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("price band not found")
	}
	return nil
}

// DeleteBand removes a band by ID.
func (r *mongoPricingRepo) DeleteBand(ctx context.Context, id string) error {
	res, err := r.bands.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("price band not found")
	}
	return nil
}

// GetRates returns the rate-settings singleton, creating a zeroed document
// on first access.
func (r *mongoPricingRepo) GetRates(ctx context.Context) (*models.RateSettings, error) {
	var rates models.RateSettings
	err := r.rates.FindOne(ctx, bson.M{}).Decode(&rates)
	if err == nil {
		return &rates, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	rates = models.RateSettings{UpdatedAt: time.Now()}
	if _, err := r.rates.InsertOne(ctx, rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

// UpdateRates overwrites the rate-settings singleton.
func (r *mongoPricingRepo) UpdateRates(ctx context.Context, rates models.RateSettings) error {
	rates.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.rates.ReplaceOne(ctx, bson.M{}, rates, opts)
	return err
}
