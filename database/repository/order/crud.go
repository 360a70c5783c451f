package orderRepo

import (
	"context"
	"errors"
	"time"

	"yourclean/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new order and returns its ID.
func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusNew
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return "", err
	}
	return order.ID, nil
}

// GetByID returns an order by its ID.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first, optionally filtered by status.
func (r *mongoOrderRepo) List(ctx context.Context, status string) ([]models.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order to a new lifecycle status.
func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("order not found")
	}
	return nil
}
