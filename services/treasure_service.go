package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type TreasureInput struct {
	Name        string
	Description string
	URL         string
}

type TreasureService struct {
	DB    *gorm.DB
	table table[models.Treasure]
}

func NewTreasureService(db *gorm.DB) *TreasureService {
	return &TreasureService{DB: db, table: newTable[models.Treasure](db, "treasure", "treasure_id")}
}

func (s *TreasureService) ListAll(ctx context.Context) ([]models.Treasure, error) {
	return s.table.list(ctx)
}

func (s *TreasureService) GetByID(ctx context.Context, id int64) (*models.Treasure, error) {
	return s.table.get(ctx, id)
}

// Create stamps date_added with the current time.
func (s *TreasureService) Create(ctx context.Context, in TreasureInput) (*models.Treasure, error) {
	treasure := &models.Treasure{
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		DateAdded:   models.Now(),
	}
	if err := s.table.insert(ctx, treasure); err != nil {
		return nil, err
	}
	return treasure, nil
}

// Update overwrites every field and restamps date_added.
func (s *TreasureService) Update(ctx context.Context, id int64, in TreasureInput) (bool, error) {
	return s.table.update(ctx, id, map[string]any{
		"treasure_name":        in.Name,
		"treasure_description": in.Description,
		"treasure_url":         in.URL,
		"date_added":           models.Now(),
	})
}

// SetURL replaces only the treasure's url, e.g. after an image upload. It is
// still a write, so date_added is restamped.
func (s *TreasureService) SetURL(ctx context.Context, id int64, url string) (bool, error) {
	return s.table.update(ctx, id, map[string]any{
		"treasure_url": url,
		"date_added":   models.Now(),
	})
}

func (s *TreasureService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}
