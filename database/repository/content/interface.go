package contentRepo

import (
	"context"

	"yourclean/database"
	"yourclean/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContentRepository manages the site content entities: reviews, advantages,
// the before/after gallery, promo texts and the company-info singleton.
type ContentRepository interface {
	ListReviews(ctx context.Context, activeOnly bool, limit int64) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (string, error)
	UpdateReview(ctx context.Context, review models.Review) error
	DeleteReview(ctx context.Context, id string) error

	ListAdvantages(ctx context.Context, activeOnly bool) ([]models.Advantage, error)
	CreateAdvantage(ctx context.Context, adv models.Advantage) (string, error)
	UpdateAdvantage(ctx context.Context, adv models.Advantage) error
	DeleteAdvantage(ctx context.Context, id string) error

	ListGallery(ctx context.Context, activeOnly bool) ([]models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, item models.GalleryItem) (string, error)
	UpdateGalleryItem(ctx context.Context, item models.GalleryItem) error
	DeleteGalleryItem(ctx context.Context, id string) error

	ListPromoTexts(ctx context.Context) ([]models.PromoText, error)
	GetActivePromo(ctx context.Context) (*models.PromoText, error)
	CreatePromoText(ctx context.Context, promo models.PromoText) (string, error)
	UpdatePromoText(ctx context.Context, promo models.PromoText) error
	DeletePromoText(ctx context.Context, id string) error

	GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error)
	UpdateCompanyInfo(ctx context.Context, info models.CompanyInfo) error
}

type mongoContentRepo struct {
	reviews    *mongo.Collection
	advantages *mongo.Collection
	gallery    *mongo.Collection
	promos     *mongo.Collection
	company    *mongo.Collection
}

// NewMongoContentRepo returns a ContentRepository backed by MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.MongoClient.Database("yourclean")
	return &mongoContentRepo{
		reviews:    db.Collection("reviews"),
		advantages: db.Collection("advantages"),
		gallery:    db.Collection("gallery_items"),
		promos:     db.Collection("promo_texts"),
		company:    db.Collection("company_info"),
	}
}
