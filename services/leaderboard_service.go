package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type LeaderboardInput struct {
	PointsEarned int64
	UserID       int64
}

type LeaderboardService struct {
	DB    *gorm.DB
	table table[models.Leaderboard]
	users *UserService
}

func NewLeaderboardService(db *gorm.DB, users *UserService) *LeaderboardService {
	return &LeaderboardService{DB: db, table: newTable[models.Leaderboard](db, "leaderboard", "leaderboard_id"), users: users}
}

func (s *LeaderboardService) ListAll(ctx context.Context) ([]models.Leaderboard, error) {
	return s.table.list(ctx)
}

func (s *LeaderboardService) GetByID(ctx context.Context, id int64) (*models.Leaderboard, error) {
	return s.table.get(ctx, id)
}

func (s *LeaderboardService) Create(ctx context.Context, in LeaderboardInput) (*models.Leaderboard, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	entry := &models.Leaderboard{
		Date:         models.Now(),
		PointsEarned: in.PointsEarned,
		UserID:       in.UserID,
	}
	if err := s.table.insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LeaderboardService) Update(ctx context.Context, id int64, in LeaderboardInput) (bool, error) {
	if err := s.check(ctx, in); err != nil {
		return false, err
	}
	return s.table.update(ctx, id, map[string]any{
		"leaderboard_date": models.Now(),
		"points_earned":    in.PointsEarned,
		"user_id":          in.UserID,
	})
}

func (s *LeaderboardService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}

func (s *LeaderboardService) check(ctx context.Context, in LeaderboardInput) error {
	return requireReferences(ctx, ref("user", in.UserID, s.users.GetByID))
}
