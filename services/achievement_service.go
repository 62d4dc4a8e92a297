package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type AchievementInput struct {
	Name           string
	Category       string
	Description    string
	PointsRequired int64
}

type AchievementService struct {
	DB    *gorm.DB
	table table[models.Achievement]
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{DB: db, table: newTable[models.Achievement](db, "achievement", "achievement_id")}
}

func (s *AchievementService) ListAll(ctx context.Context) ([]models.Achievement, error) {
	return s.table.list(ctx)
}

func (s *AchievementService) GetByID(ctx context.Context, id int64) (*models.Achievement, error) {
	return s.table.get(ctx, id)
}

func (s *AchievementService) Create(ctx context.Context, in AchievementInput) (*models.Achievement, error) {
	achievement := &models.Achievement{
		Name:           in.Name,
		Category:       in.Category,
		Description:    in.Description,
		PointsRequired: in.PointsRequired,
	}
	if err := s.table.insert(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *AchievementService) Update(ctx context.Context, id int64, in AchievementInput) (bool, error) {
	return s.table.update(ctx, id, map[string]any{
		"achievement_name":        in.Name,
		"achievement_category":    in.Category,
		"achievement_description": in.Description,
		"points_required":         in.PointsRequired,
	})
}

func (s *AchievementService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}
