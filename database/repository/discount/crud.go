package discountRepo

import (
	"context"
	"errors"
	"time"

	"yourclean/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns every discount entry, ordered by date.
func (r *mongoDiscountRepo) List(ctx context.Context) ([]models.DateDiscount, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var discounts []models.DateDiscount
	if err := cursor.All(ctx, &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

// ListActiveInWindow returns active discounts with from <= date <= to,
// ordered by date then percentage descending.
func (r *mongoDiscountRepo) ListActiveInWindow(ctx context.Context, from, to time.Time) ([]models.DateDiscount, error) {
	filter := bson.M{
		"isActive": true,
		"date":     bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "percent", Value: -1},
	})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var discounts []models.DateDiscount
	if err := cursor.All(ctx, &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

// Create inserts a new discount entry and returns its ID.
func (r *mongoDiscountRepo) Create(ctx context.Context, discount models.DateDiscount) (string, error) {
	if discount.ID == "" {
		discount.ID = uuid.New().String()
	}
	discount.CreatedAt = time.Now()
	discount.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, discount); err != nil {
		return "", err
	}
	return discount.ID, nil
}

// Update replaces an existing discount entry.
func (r *mongoDiscountRepo) Update(ctx context.Context, discount models.DateDiscount) error {
	discount.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": discount.ID}, discount)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("discount not found")
	}
	return nil
}

// Delete removes a discount entry by ID.
func (r *mongoDiscountRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("discount not found")
	}
	return nil
}
