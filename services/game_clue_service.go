package services

import (
	"context"

	"findly-api/models"

	"gorm.io/gorm"
)

type GameClueInput struct {
	GameID int64
	ClueID int64
}

type GameClueService struct {
	DB    *gorm.DB
	table table[models.GameClue]
	games *GameService
	clues *ClueService
}

func NewGameClueService(db *gorm.DB, games *GameService, clues *ClueService) *GameClueService {
	return &GameClueService{
		DB:    db,
		table: newTable[models.GameClue](db, "game clue", "gameclue_id"),
		games: games,
		clues: clues,
	}
}

func (s *GameClueService) ListAll(ctx context.Context) ([]models.GameClue, error) {
	return s.table.list(ctx)
}

func (s *GameClueService) GetByID(ctx context.Context, id int64) (*models.GameClue, error) {
	return s.table.get(ctx, id)
}

func (s *GameClueService) Create(ctx context.Context, in GameClueInput) (*models.GameClue, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	gc := &models.GameClue{GameID: in.GameID, ClueID: in.ClueID}
	if err := s.table.insert(ctx, gc); err != nil {
		return nil, err
	}
	return gc, nil
}

func (s *GameClueService) Update(ctx context.Context, id int64, in GameClueInput) (bool, error) {
	if err := s.check(ctx, in); err != nil {
		return false, err
	}
	return s.table.update(ctx, id, map[string]any{
		"game_id": in.GameID,
		"clue_id": in.ClueID,
	})
}

func (s *GameClueService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}

func (s *GameClueService) check(ctx context.Context, in GameClueInput) error {
	return requireReferences(ctx,
		ref("game", in.GameID, s.games.GetByID),
		ref("clue", in.ClueID, s.clues.GetByID),
	)
}
