package catalogRepo

import (
	"context"
	"errors"

	"yourclean/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func activeFilter(activeOnly bool) bson.M {
	if activeOnly {
		return bson.M{"isActive": true}
	}
	return bson.M{}
}

// ListExtras returns extra services sorted by name.
func (r *mongoCatalogRepo) ListExtras(ctx context.Context, activeOnly bool) ([]models.ExtraService, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.extras.Find(ctx, activeFilter(activeOnly), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var extras []models.ExtraService
	if err := cursor.All(ctx, &extras); err != nil {
		return nil, err
	}
	return extras, nil
}

// CreateExtra inserts a new extra service and returns its ID.
func (r *mongoCatalogRepo) CreateExtra(ctx context.Context, svc models.ExtraService) (string, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if _, err := r.extras.InsertOne(ctx, svc); err != nil {
		return "", err
	}
	return svc.ID, nil
}

// UpdateExtra replaces an existing extra service.
func (r *mongoCatalogRepo) UpdateExtra(ctx context.Context, svc models.ExtraService) error {
	res, err := r.extras.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("extra service not found")
	}
	return nil
}

// DeleteExtra removes an extra service by ID.
func (r *mongoCatalogRepo) DeleteExtra(ctx context.Context, id string) error {
	res, err := r.extras.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("extra service not found")
	}
	return nil
}

// ListDryItems returns dry-cleaning items sorted by name.
func (r *mongoCatalogRepo) ListDryItems(ctx context.Context, activeOnly bool) ([]models.DryCleaningItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.dryItems.Find(ctx, activeFilter(activeOnly), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.DryCleaningItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateDryItem inserts a new dry-cleaning item and returns its ID.
func (r *mongoCatalogRepo) CreateDryItem(ctx context.Context, item models.DryCleaningItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, err := r.dryItems.InsertOne(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

// UpdateDryItem replaces an existing dry-cleaning item.
func (r *mongoCatalogRepo) UpdateDryItem(ctx context.Context, item models.DryCleaningItem) error {
	res, err := r.dryItems.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("dry cleaning item not found")
	}
	return nil
}

// DeleteDryItem removes a dry-cleaning item by ID.
func (r *mongoCatalogRepo) DeleteDryItem(ctx context.Context, id string) error {
	res, err := r.dryItems.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("dry cleaning item not found")
	}
	return nil
}
