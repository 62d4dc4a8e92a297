package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type UserAchievementInput struct {
	UserID        int64
	AchievementID int64
}

type UserAchievementService struct {
	DB           *gorm.DB
	table        table[models.UserAchievement]
	users        *UserService
	achievements *AchievementService
}

func NewUserAchievementService(db *gorm.DB, users *UserService, achievements *AchievementService) *UserAchievementService {
	return &UserAchievementService{
		DB:           db,
		table:        newTable[models.UserAchievement](db, "user achievement", "userachievement_id"),
		users:        users,
		achievements: achievements,
	}
}

func (s *UserAchievementService) ListAll(ctx context.Context) ([]models.UserAchievement, error) {
	return s.table.list(ctx)
}

func (s *UserAchievementService) GetByID(ctx context.Context, id int64) (*models.UserAchievement, error) {
	return s.table.get(ctx, id)
}

func (s *UserAchievementService) Create(ctx context.Context, in UserAchievementInput) (*models.UserAchievement, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	ua := &models.UserAchievement{
		UserID:        in.UserID,
		AchievementID: in.AchievementID,
		DateReceived:  models.Now(),
	}
	if err := s.table.insert(ctx, ua); err != nil {
		return nil, err
	}
	return ua, nil
}

func (s *UserAchievementService) Update(ctx context.Context, id int64, in UserAchievementInput) (bool, error) {
	if err := s.check(ctx, in); err != nil {
		return false, err
	}
	return s.table.update(ctx, id, map[string]any{
		"user_id":        in.UserID,
		"achievement_id": in.AchievementID,
		"date_received":  models.Now(),
	})
}

func (s *UserAchievementService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}

func (s *UserAchievementService) check(ctx context.Context, in UserAchievementInput) error {
	return requireReferences(ctx,
		ref("user", in.UserID, s.users.GetByID),
		ref("achievement", in.AchievementID, s.achievements.GetByID),
	)
}
