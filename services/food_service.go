package services

import (
	"strings"

	"sproutly/models"
)

// FoodMatch pairs a recognized label with the table entry it resolved to.
type FoodMatch struct {
	Food       models.FoodItem `json:"food"`
	Label      string          `json:"label"`
	Confidence float64         `json:"confidence"`
}

type FoodService struct {
	vision *VisionService
	table  []models.FoodItem
}

func NewFoodService(vision *VisionService) *FoodService {
	return &FoodService{vision: vision, table: foodTable}
}

// Search does a case-insensitive substring match over labels and aliases.
func (s *FoodService) Search(query string, limit int) []models.FoodItem {
	if limit <= 0 {
		limit = 10
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.FoodItem
	for _, f := range s.table {
		if matchesFood(f, q) {
			out = append(out, f)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

func (s *FoodService) Lookup(id string) (models.FoodItem, bool) {
	for _, f := range s.table {
		if f.ID == id {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

// RecognizeFood runs label detection on the photo and keeps the labels
// that resolve to a table entry, best confidence first.
func (s *FoodService) RecognizeFood(imageData string) ([]FoodMatch, error) {
	labels, err := s.vision.DetectLabels(imageData)
	if err != nil {
		return nil, err
	}
	var matches []FoodMatch
	for _, l := range labels {
		q := strings.ToLower(l.Name)
		for _, f := range s.table {
			if matchesFood(f, q) {
				matches = append(matches, FoodMatch{Food: f, Label: l.Name, Confidence: l.Confidence})
				break
			}
		}
	}
	return matches, nil
}

func matchesFood(f models.FoodItem, q string) bool {
	if strings.Contains(strings.ToLower(f.Label), q) || strings.Contains(q, strings.ToLower(f.Label)) {
		return true
	}
	for _, a := range f.Aliases {
		al := strings.ToLower(a)
		if strings.Contains(al, q) || strings.Contains(q, al) {
			return true
		}
	}
	return false
}
