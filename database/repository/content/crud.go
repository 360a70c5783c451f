package contentRepo

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

func activeFilter(activeOnly bool) bson.M {
	if activeOnly {
		return bson.M{"isActive": true}
	}
	return bson.M{}
}

// ListReviews returns reviews, newest first. A limit of 0 means no limit.
func (r *mongoContentRepo) ListReviews(ctx context.Context, activeOnly bool, limit int64) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.reviews.Find(ctx, activeFilter(activeOnly), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview inserts a new review and returns its ID.
func (r *mongoContentRepo) CreateReview(ctx context.Context, review models.Review) (string, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.Date.IsZero() {
		review.Date = time.Now()
	}
	review.CreatedAt = time.Now()
	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		return "", err
	}
	return review.ID, nil
}

// UpdateReview replaces an existing review.
func (r *mongoContentRepo) UpdateReview(ctx context.Context, review models.Review) error {
	res, err := r.reviews.ReplaceOne(ctx, bson.M{"id": review.ID}, review)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("review not found")
	}
	return nil
}

// DeleteReview removes a review by ID.
func (r *mongoContentRepo) DeleteReview(ctx context.Context, id string) error {
	res, err := r.reviews.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("review not found")
	}
	return nil
}

// ListAdvantages returns advantages in display order.
func (r *mongoContentRepo) ListAdvantages(ctx context.Context, activeOnly bool) ([]models.Advantage, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "sortOrder", Value: 1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := r.advantages.Find(ctx, activeFilter(activeOnly), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var advantages []models.Advantage
	if err := cursor.All(ctx, &advantages); err != nil {
		return nil, err
	}
	return advantages, nil
}

// CreateAdvantage inserts a new advantage and returns its ID.
func (r *mongoContentRepo) CreateAdvantage(ctx context.Context, adv models.Advantage) (string, error) {
	if adv.ID == "" {
		adv.ID = uuid.New().String()
	}
	adv.CreatedAt = time.Now()
	if _, err := r.advantages.InsertOne(ctx, adv); err != nil {
		return "", err
	}
	return adv.ID, nil
}

// UpdateAdvantage replaces an existing advantage.
func (r *mongoContentRepo) UpdateAdvantage(ctx context.Context, adv models.Advantage) error {
	res, err := r.advantages.ReplaceOne(ctx, bson.M{"id": adv.ID}, adv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("advantage not found")
	}
	return nil
}

// DeleteAdvantage removes an advantage by ID.
func (r *mongoContentRepo) DeleteAdvantage(ctx context.Context, id string) error {
	res, err := r.advantages.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("advantage not found")
	}
	return nil
}

// ListGallery returns gallery items in display order.
func (r *mongoContentRepo) ListGallery(ctx context.Context, activeOnly bool) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "sortOrder", Value: 1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := r.gallery.Find(ctx, activeFilter(activeOnly), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateGalleryItem inserts a new gallery item and returns its ID.
func (r *mongoContentRepo) CreateGalleryItem(ctx context.Context, item models.GalleryItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	if _, err := r.gallery.InsertOne(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

// UpdateGalleryItem replaces an existing gallery item.
func (r *mongoContentRepo) UpdateGalleryItem(ctx context.Context, item models.GalleryItem) error {
	res, err := r.gallery.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("gallery item not found")
	}
	return nil
}

// DeleteGalleryItem removes a gallery item by ID.
func (r *mongoContentRepo) DeleteGalleryItem(ctx context.Context, id string) error {
	res, err := r.gallery.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("gallery item not found")
	}
	return nil
}

// ListPromoTexts returns every promo text.
func (r *mongoContentRepo) ListPromoTexts(ctx context.Context) ([]models.PromoText, error) {
	cursor, err := r.promos.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var promos []models.PromoText
	if err := cursor.All(ctx, &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// GetActivePromo returns the first active promo text, or nil when none is set.
func (r *mongoContentRepo) GetActivePromo(ctx context.Context) (*models.PromoText, error) {
	var promo models.PromoText
	err := r.promos.FindOne(ctx, bson.M{"isActive": true}).Decode(&promo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// CreatePromoText inserts a new promo text and returns its ID.
func (r *mongoContentRepo) CreatePromoText(ctx context.Context, promo models.PromoText) (string, error) {
	if promo.ID == "" {
		promo.ID = uuid.New().String()
	}
	if _, err := r.promos.InsertOne(ctx, promo); err != nil {
		return "", err
	}
	return promo.ID, nil
}

// UpdatePromoText replaces an existing promo text.
func (r *mongoContentRepo) UpdatePromoText(ctx context.Context, promo models.PromoText) error {
	res, err := r.promos.ReplaceOne(ctx, bson.M{"id": promo.ID}, promo)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("promo text not found")
	}
	return nil
}

// DeletePromoText removes a promo text by ID.
func (r *mongoContentRepo) DeletePromoText(ctx context.Context, id string) error {
	res, err := r.promos.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("promo text not found")
	}
	return nil
}

// GetCompanyInfo returns the company-info singleton, creating an empty
// document on first access.
func (r *mongoContentRepo) GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	var info models.CompanyInfo
	err := r.company.FindOne(ctx, bson.M{}).Decode(&info)
	if err == nil {
		return &info, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	info = models.CompanyInfo{UpdatedAt: time.Now()}
	if _, err := r.company.InsertOne(ctx, info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateCompanyInfo overwrites the company-info singleton.
func (r *mongoContentRepo) UpdateCompanyInfo(ctx context.Context, info models.CompanyInfo) error {
	info.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.company.ReplaceOne(ctx, bson.M{}, info, opts)
	return err
}
