package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rentify/models"
)

// The feed returns either a bare array of car-like records or an object
// holding the array under one of these conventionally named keys, searched
// in order before falling back to the first array value found anywhere.
var arrayKeys = []string{"cars", "rentalCars", "data", "items", "results"}

// Alias table: canonical field -> ordered candidate source keys, evaluated
// once at ingestion.
var (
	idAliases       = []string{"id", "carId", "ID"}
	makeAliases     = []string{"make", "brand", "manufacturer"}
	modelAliases    = []string{"model", "name", "carName"}
	typeAliases     = []string{"type", "carType", "category"}
	imageAliases    = []string{"image", "imageURL", "imageUrl", "img"}
	priceAliases    = []string{"pricePerDay", "price_per_day", "price"}
	locationAliases = []string{"location", "city", "district"}
	seatsAliases    = []string{"seats", "seatCount", "capacity", "passengers"}
	colorAliases    = []string{"color", "colour"}
	ratingAliases   = []string{"rating", "stars"}
)

// extractCars pulls the record array out of a decoded feed document.
func extractCars(doc any) ([]map[string]any, error) {
	toRecords := func(items []any) []map[string]any {
		records := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if m, ok := item.(map[string]any); ok {
				records = append(records, m)
			}
		}
		return records
	}

	if items, ok := doc.([]any); ok {
		return toRecords(items), nil
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.New("feed document is neither an array nor an object")
	}
	for _, key := range arrayKeys {
		if items, ok := obj[key].([]any); ok {
			return toRecords(items), nil
		}
	}
	// Not under a conventional key: take the first array value found.
	for _, value := range obj {
		if items, ok := value.([]any); ok {
			return toRecords(items), nil
		}
	}
	return nil, errors.New("no car array found in feed document")
}

func firstValue(record map[string]any, keys []string) any {
	for _, key := range keys {
		if v, ok := record[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asInt(v any, fallback int) int {
	if f, ok := asFloat(v); ok && f > 0 {
		return int(f)
	}
	return fallback
}

// normalizeCarType folds the many feed spellings into the canonical set.
func normalizeCarType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case t == "":
		return models.CarTypeOther
	case strings.Contains(t, "eco"), strings.Contains(t, "hatch"):
		return models.CarTypeEconomy
	case strings.Contains(t, "lux"):
		return models.CarTypeLuxury
	case strings.Contains(t, "sedan"), strings.Contains(t, "saloon"):
		return models.CarTypeSedan
	case strings.Contains(t, "suv"), strings.Contains(t, "crossover"):
		return models.CarTypeSUV
	case strings.Contains(t, "sport"):
		return models.CarTypeSports
	}
	switch t {
	case models.CarTypeEconomy, models.CarTypeSedan, models.CarTypeSUV,
		models.CarTypeLuxury, models.CarTypeSports:
		return t
	}
	return models.CarTypeOther
}

// normalizeCar maps one raw feed record into the canonical Car. A record
// whose required fields cannot be resolved fails ingestion on its own
// rather than propagating empty values downstream.
func normalizeCar(record map[string]any, index int) (models.Car, error) {
	make := asString(firstValue(record, makeAliases))
	model := asString(firstValue(record, modelAliases))
	if make == "" && model == "" {
		return models.Car{}, fmt.Errorf("record %d: no make or model", index)
	}

	priceRaw := firstValue(record, priceAliases)
	price, ok := asFloat(priceRaw)
	if !ok || price < 0 {
		return models.Car{}, fmt.Errorf("record %d: unresolvable price %v", index, priceRaw)
	}

	id := asString(firstValue(record, idAliases))
	if id == "" {
		id = fmt.Sprintf("car-%d", index)
	}

	name := model
	if make != "" && model != "" {
		name = make + " " + model
	} else if model == "" {
		name = make
	}

	rating, _ := asFloat(firstValue(record, ratingAliases))
	if rating < 0 {
		rating = 0
	} else if rating > 5 {
		rating = 5
	}

	return models.Car{
		ID:       id,
		Name:     name,
		Make:     make,
		Model:    model,
		Type:     normalizeCarType(asString(firstValue(record, typeAliases))),
		Price:    price,
		Color:    asString(firstValue(record, colorAliases)),
		Seats:    asInt(firstValue(record, seatsAliases), 4),
		Rating:   rating,
		Image:    asString(firstValue(record, imageAliases)),
		Location: asString(firstValue(record, locationAliases)),
	}, nil
}
