package catalog

import (
	"context"
	"net/http"

	"rentify/database/repository"
	"rentify/models"

	"go.uber.org/zap"
)

// CatalogService fetches and normalizes car records from the remote
// read-only feed and merges in locally added agency cars, producing a single
// canonical car shape.
type CatalogService interface {
	ListCars(ctx context.Context) ([]models.Car, error)
	AddCar(ctx context.Context, car models.Car) (models.Car, error)
	RemoveCar(ctx context.Context, id string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo    repository.Repository
	Client  *http.Client
	FeedURL string
	Logger  *zap.Logger
}
