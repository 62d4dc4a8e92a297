package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type GameInput struct {
	Name        string
	Type        string
	Description string
	Difficulty  string
}

type GameService struct {
	DB    *gorm.DB
	table table[models.Game]
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{DB: db, table: newTable[models.Game](db, "game", "game_id")}
}

func (s *GameService) ListAll(ctx context.Context) ([]models.Game, error) {
	return s.table.list(ctx)
}

func (s *GameService) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	return s.table.get(ctx, id)
}

func (s *GameService) Create(ctx context.Context, in GameInput) (*models.Game, error) {
	game := &models.Game{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Difficulty:  in.Difficulty,
	}
	if err := s.table.insert(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) Update(ctx context.Context, id int64, in GameInput) (bool, error) {
	return s.table.update(ctx, id, map[string]any{
		"game_name":        in.Name,
		"game_type":        in.Type,
		"game_description": in.Description,
		"game_difficulty":  in.Difficulty,
	})
}

func (s *GameService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}
