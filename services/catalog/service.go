package catalog

import (
	"context"

	catalogRepo "yourclean/database/repository/catalog"
	"yourclean/models"
)

// ServiceList is the public payload of bookable add-ons.
type ServiceList struct {
	ExtraServices       []models.ExtraService    `json:"extra_services"`
	DryCleaningServices []models.DryCleaningItem `json:"dry_cleaning_services"`
}

// CatalogService exposes the public add-on catalog.
type CatalogService interface {
	ActiveServices(ctx context.Context) (*ServiceList, error)
}

type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

// ActiveServices returns the active extras and dry-cleaning items.
func (s *DefaultCatalogService) ActiveServices(ctx context.Context) (*ServiceList, error) {
	extras, err := s.Repo.ListExtras(ctx, true)
	if err != nil {
		return nil, err
	}
	dryItems, err := s.Repo.ListDryItems(ctx, true)
	if err != nil {
		return nil, err
	}
	if extras == nil {
		extras = []models.ExtraService{}
	}
	if dryItems == nil {
		dryItems = []models.DryCleaningItem{}
	}
	return &ServiceList{ExtraServices: extras, DryCleaningServices: dryItems}, nil
}
