package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type GameUserInput struct {
	GameID int64
	UserID int64
	Score  int64
	Status models.GameUserStatus
}

type GameUserService struct {
	DB    *gorm.DB
	table table[models.GameUser]
	games *GameService
	users *UserService
}

func NewGameUserService(db *gorm.DB, games *GameService, users *UserService) *GameUserService {
	return &GameUserService{
		DB:    db,
		table: newTable[models.GameUser](db, "game user", "gameuser_id"),
		games: games,
		users: users,
	}
}

func (s *GameUserService) ListAll(ctx context.Context) ([]models.GameUser, error) {
	return s.table.list(ctx)
}

func (s *GameUserService) GetByID(ctx context.Context, id int64) (*models.GameUser, error) {
	return s.table.get(ctx, id)
}

// Create always starts the score at zero; the submitted score only applies on Update.
func (s *GameUserService) Create(ctx context.Context, in GameUserInput) (*models.GameUser, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	gu := &models.GameUser{
		GameID:        in.GameID,
		UserID:        in.UserID,
		Status:        in.Status,
		DateCompleted: models.Now(),
	}
	if err := s.table.insert(ctx, gu); err != nil {
		return nil, err
	}
	return gu, nil
}

func (s *GameUserService) Update(ctx context.Context, id int64, in GameUserInput) (bool, error) {
	if err := s.check(ctx, in); err != nil {
		return false, err
	}
	return s.table.update(ctx, id, map[string]any{
		"game_id":        in.GameID,
		"user_id":        in.UserID,
		"score":          in.Score,
		"status":         in.Status,
		"date_completed": models.Now(),
	})
}

func (s *GameUserService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}

func (s *GameUserService) check(ctx context.Context, in GameUserInput) error {
	return requireReferences(ctx,
		ref("game", in.GameID, s.games.GetByID),
		ref("user", in.UserID, s.users.GetByID),
	)
}
