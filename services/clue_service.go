package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type ClueInput struct {
	Text       string
	TreasureID int64
}

type ClueService struct {
	DB        *gorm.DB
	table     table[models.Clue]
	treasures *TreasureService
}

func NewClueService(db *gorm.DB, treasures *TreasureService) *ClueService {
	return &ClueService{DB: db, table: newTable[models.Clue](db, "clue", "clue_id"), treasures: treasures}
}

func (s *ClueService) ListAll(ctx context.Context) ([]models.Clue, error) {
	return s.table.list(ctx)
}

func (s *ClueService) GetByID(ctx context.Context, id int64) (*models.Clue, error) {
	return s.table.get(ctx, id)
}

func (s *ClueService) Create(ctx context.Context, in ClueInput) (*models.Clue, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	clue := &models.Clue{
		Text:       in.Text,
		DateIssued: models.Now(),
		TreasureID: in.TreasureID,
	}
	if err := s.table.insert(ctx, clue); err != nil {
		return nil, err
	}
	return clue, nil
}

func (s *ClueService) Update(ctx context.Context, id int64, in ClueInput) (bool, error) {
	if err := s.check(ctx, in); err != nil {
		return false, err
	}
	return s.table.update(ctx, id, map[string]any{
		"clue_text":   in.Text,
		"date_issued": models.Now(),
		"treasure_id": in.TreasureID,
	})
}

func (s *ClueService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}

func (s *ClueService) check(ctx context.Context, in ClueInput) error {
	return requireReferences(ctx, ref("treasure", in.TreasureID, s.treasures.GetByID))
}
