package content

import (
	"context"

	contentRepo "yourclean/database/repository/content"
	pricingRepo "yourclean/database/repository/pricing"
	"yourclean/models"
)

// ContentService exposes the public marketing content.
type ContentService interface {
	Reviews(ctx context.Context) ([]models.Review, error)
	Advantages(ctx context.Context) ([]models.Advantage, error)
	Gallery(ctx context.Context) ([]models.GalleryItem, error)
	CompanyInfo(ctx context.Context) (*models.CompanyInfo, error)
	LevelDescriptions(ctx context.Context) ([]models.LevelDescription, error)
}

type DefaultContentService struct {
	Repo        contentRepo.ContentRepository
	PricingRepo pricingRepo.PricingRepository
}

// Reviews returns active customer reviews, newest first.
func (s *DefaultContentService) Reviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.ListReviews(ctx, true, 0)
}

// Advantages returns active advantage cards in display order.
func (s *DefaultContentService) Advantages(ctx context.Context) ([]models.Advantage, error) {
	return s.Repo.ListAdvantages(ctx, true)
}

// Gallery returns active before/after pairs in display order.
func (s *DefaultContentService) Gallery(ctx context.Context) ([]models.GalleryItem, error) {
	return s.Repo.ListGallery(ctx, true)
}

// CompanyInfo returns the contact singleton.
func (s *DefaultContentService) CompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	return s.Repo.GetCompanyInfo(ctx)
}

var levelCards = map[string]models.LevelDescription{
	models.LevelBasic: {
		Title:       "BASIC",
		Description: "Regular maintenance cleaning to keep the place fresh",
		IncludedItems: []string{
			"Wet floor cleaning", "Dusting", "Bathroom cleaning", "Trash removal",
		},
	},
	models.LevelGeneral: {
		Title:       "GENERAL",
		Description: "Deep cleaning with detailed treatment of all surfaces",
		IncludedItems: []string{
			"Everything in BASIC", "Window washing", "Kitchen degreasing", "Upholstery vacuuming",
		},
	},
	models.LevelGeneralPlus: {
		Title:       "GENERAL PLUS",
		Description: "Premium cleaning with professional-grade products",
		IncludedItems: []string{
			"Everything in GENERAL", "Carpet dry cleaning", "Surface polishing", "Aromatization",
		},
	},
}

// LevelDescriptions returns description cards for levels that actually have
// active price bands configured.
func (s *DefaultContentService) LevelDescriptions(ctx context.Context) ([]models.LevelDescription, error) {
	bands, err := s.PricingRepo.ListActiveBands(ctx)
	if err != nil {
		return nil, err
	}

	configured := make(map[string]bool, 3)
	for _, band := range bands {
		configured[band.Level] = true
	}

	cards := []models.LevelDescription{}
	for _, level := range []string{models.LevelBasic, models.LevelGeneral, models.LevelGeneralPlus} {
		if !configured[level] {
			continue
		}
		card := levelCards[level]
		card.ID = len(cards) + 1
		cards = append(cards, card)
	}
	return cards, nil
}
