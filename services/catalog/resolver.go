package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"rentify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListCars fetches the remote feed, normalizes every record, and merges in
// locally added cars from the store. Records that fail normalization are
// skipped individually; a feed that cannot be fetched or contains no array
// at all fails with CatalogUnavailableError.
func (s *DefaultCatalogService) ListCars(ctx context.Context) ([]models.Car, error) {
	feedCars, err := s.fetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	local, err := s.Repo.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: load local cars: %w", err)
	}

	return append(feedCars, local...), nil
}

func (s *DefaultCatalogService) fetchFeed(ctx context.Context) ([]models.Car, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.FeedURL, nil)
	if err != nil {
		return nil, &CatalogUnavailableError{Reason: "building feed request", Err: err}
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &CatalogUnavailableError{Reason: "fetching feed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &CatalogUnavailableError{Reason: fmt.Sprintf("feed returned status %d", resp.StatusCode)}
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &CatalogUnavailableError{Reason: "decoding feed", Err: err}
	}

	records, err := extractCars(doc)
	if err != nil {
		return nil, &CatalogUnavailableError{Reason: err.Error()}
	}

	cars := make([]models.Car, 0, len(records))
	for i, record := range records {
		car, err := normalizeCar(record, i)
		if err != nil {
			s.Logger.Warn("skipping feed record", zap.Error(err))
			continue
		}
		cars = append(cars, car)
	}
	return cars, nil
}

// AddCar appends an agency/admin-added car to the listing set with a
// generated id. The approval flag and agency attribution are never taken
// from the client: a new car starts unapproved and unattributed, and both
// are set by the agency approval flow.
func (s *DefaultCatalogService) AddCar(ctx context.Context, car models.Car) (models.Car, error) {
	if car.Name == "" && car.Make != "" {
		car.Name = car.Make + " " + car.Model
	}
	if car.Price < 0 {
		return models.Car{}, models.ValidationErrors{{Field: "price", Message: "Price must be non-negative"}}
	}
	if car.Seats <= 0 {
		car.Seats = 4
	}
	car.ID = "car-" + uuid.New().String()
	car.Type = normalizeCarType(car.Type)
	car.Approved = false
	car.AgencyID = ""

	err := s.Repo.MutateCars(ctx, func(cars []models.Car) ([]models.Car, error) {
		return append(cars, car), nil
	})
	if err != nil {
		return models.Car{}, fmt.Errorf("catalog: save cars: %w", err)
	}

	s.Logger.Info("car added", zap.String("id", car.ID), zap.String("name", car.Name))
	return car, nil
}

// RemoveCar takes a car out of the listing set. Booking snapshots keep
// their own copy, so removal never touches existing bookings.
func (s *DefaultCatalogService) RemoveCar(ctx context.Context, id string) error {
	return s.Repo.MutateCars(ctx, func(cars []models.Car) ([]models.Car, error) {
		kept := make([]models.Car, 0, len(cars))
		found := false
		for _, car := range cars {
			if car.ID == id {
				found = true
				continue
			}
			kept = append(kept, car)
		}
		if !found {
			return nil, ErrCarNotFound
		}
		return kept, nil
	})
}
