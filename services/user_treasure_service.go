package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type UserTreasureInput struct {
	UserID     int64
	TreasureID int64
	IsVerified bool
}

type UserTreasureService struct {
	DB        *gorm.DB
	table     table[models.UserTreasure]
	users     *UserService
	treasures *TreasureService
}

func NewUserTreasureService(db *gorm.DB, users *UserService, treasures *TreasureService) *UserTreasureService {
	return &UserTreasureService{
		DB:        db,
		table:     newTable[models.UserTreasure](db, "user treasure", "usertreasure_id"),
		users:     users,
		treasures: treasures,
	}
}

func (s *UserTreasureService) ListAll(ctx context.Context) ([]models.UserTreasure, error) {
	return s.table.list(ctx)
}

func (s *UserTreasureService) GetByID(ctx context.Context, id int64) (*models.UserTreasure, error) {
	return s.table.get(ctx, id)
}

func (s *UserTreasureService) Create(ctx context.Context, in UserTreasureInput) (*models.UserTreasure, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	ut := &models.UserTreasure{
		UserID:     in.UserID,
		TreasureID: in.TreasureID,
		IsVerified: in.IsVerified,
		DateFound:  models.Now(),
	}
	if err := s.table.insert(ctx, ut); err != nil {
		return nil, err
	}
	return ut, nil
}

func (s *UserTreasureService) Update(ctx context.Context, id int64, in UserTreasureInput) (bool, error) {
	if err := s.check(ctx, in); err != nil {
		return false, err
	}
	return s.table.update(ctx, id, map[string]any{
		"user_id":     in.UserID,
		"treasure_id": in.TreasureID,
		"is_verified": in.IsVerified,
		"date_found":  models.Now(),
	})
}

func (s *UserTreasureService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}

func (s *UserTreasureService) check(ctx context.Context, in UserTreasureInput) error {
	return requireReferences(ctx,
		ref("user", in.UserID, s.users.GetByID),
		ref("treasure", in.TreasureID, s.treasures.GetByID),
	)
}
