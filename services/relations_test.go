package services

import (
	"context"
	"testing"

	"findly-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClueRequiresTreasure(t *testing.T) {
	s := testServices(t)
	ctx := context.Background()

	_, err := s.Clues.Create(ctx, ClueInput{Text: "look up", TreasureID: 999})
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	var missing *MissingReferenceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "treasure", missing.Entity)
	assert.Equal(t, int64(999), missing.ID)
	assert.Zero(t, count[models.Clue](t, s.Clues.DB))

	treasure := seedTreasure(t, s, "lamp")
	clue, err := s.Clues.Create(ctx, ClueInput{Text: "look up", TreasureID: treasure})
	require.NoError(t, err)
	assert.False(t, clue.DateIssued.IsZero())
	assert.Equal(t, int64(1), count[models.Clue](t, s.Clues.DB))

	ok, err := s.Clues.Update(ctx, clue.ID, ClueInput{Text: "look down", TreasureID: 999})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.False(t, ok)

	got, err := s.Clues.GetByID(ctx, clue.ID)
	require.NoError(t, err)
	assert.Equal(t, "look up", got.Text)
}

func TestGameUserUpdateWithMissingUserLeavesRow(t *testing.T) {
	s := testServices(t)
	ctx := context.Background()
	game := seedGame(t, s, "riverside")
	user := seedUser(t, s, "alice")

	gu, err := s.GameUsers.Create(ctx, GameUserInput{GameID: game, UserID: user, Score: 75, Status: models.StatusNotCompleted})
	require.NoError(t, err)
	assert.Zero(t, gu.Score)

	ok, err := s.GameUsers.Update(ctx, gu.ID, GameUserInput{GameID: game, UserID: 999, Score: 10, Status: models.StatusCompleted})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.False(t, ok)

	got, err := s.GameUsers.GetByID(ctx, gu.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got.UserID)
	assert.Zero(t, got.Score)
	assert.Equal(t, models.StatusNotCompleted, got.Status)

	ok, err = s.GameUsers.Update(ctx, gu.ID, GameUserInput{GameID: game, UserID: user, Score: 10, Status: models.StatusCompleted})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = s.GameUsers.GetByID(ctx, gu.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Score)
	assert.Equal(t, models.StatusCompleted, got.Status)
}

func TestJoinTablesCheckEveryReference(t *testing.T) {
	s := testServices(t)
	ctx := context.Background()
	user := seedUser(t, s, "alice")
	game := seedGame(t, s, "riverside")
	treasure := seedTreasure(t, s, "lamp")
	clue, err := s.Clues.Create(ctx, ClueInput{Text: "by the water", TreasureID: treasure})
	require.NoError(t, err)
	achievement, err := s.Achievements.Create(ctx, AchievementInput{Name: "First find", Category: "finds", Description: "Find one treasure", PointsRequired: 10})
	require.NoError(t, err)

	t.Run("games-clues", func(t *testing.T) {
		_, err := s.GameClues.Create(ctx, GameClueInput{GameID: game, ClueID: 999})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		_, err = s.GameClues.Create(ctx, GameClueInput{GameID: 999, ClueID: clue.ID})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		gc, err := s.GameClues.Create(ctx, GameClueInput{GameID: game, ClueID: clue.ID})
		require.NoError(t, err)
		assert.Positive(t, gc.ID)
	})

	t.Run("users-achievements", func(t *testing.T) {
		_, err := s.UserAchievements.Create(ctx, UserAchievementInput{UserID: user, AchievementID: 999})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		ua, err := s.UserAchievements.Create(ctx, UserAchievementInput{UserID: user, AchievementID: achievement.ID})
		require.NoError(t, err)
		assert.False(t, ua.DateReceived.IsZero())
	})

	t.Run("users-treasures", func(t *testing.T) {
		_, err := s.UserTreasures.Create(ctx, UserTreasureInput{UserID: 999, TreasureID: treasure})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		ut, err := s.UserTreasures.Create(ctx, UserTreasureInput{UserID: user, TreasureID: treasure, IsVerified: true})
		require.NoError(t, err)
		assert.True(t, ut.IsVerified)

		ok, err := s.UserTreasures.Update(ctx, ut.ID, UserTreasureInput{UserID: user, TreasureID: treasure})
		require.NoError(t, err)
		assert.True(t, ok)
		got, err := s.UserTreasures.GetByID(ctx, ut.ID)
		require.NoError(t, err)
		assert.False(t, got.IsVerified)
	})

	t.Run("leaderboards", func(t *testing.T) {
		_, err := s.Leaderboards.Create(ctx, LeaderboardInput{PointsEarned: 5, UserID: 999})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		lb, err := s.Leaderboards.Create(ctx, LeaderboardInput{PointsEarned: 5, UserID: user})
		require.NoError(t, err)
		assert.Equal(t, int64(5), lb.PointsEarned)
	})

	assert.Equal(t, int64(1), count[models.GameClue](t, s.GameClues.DB))
	assert.Equal(t, int64(1), count[models.UserAchievement](t, s.UserAchievements.DB))
	assert.Equal(t, int64(1), count[models.UserTreasure](t, s.UserTreasures.DB))
	assert.Equal(t, int64(1), count[models.Leaderboard](t, s.Leaderboards.DB))
}

func TestDeleteDoesNotCascade(t *testing.T) {
	s := testServices(t)
	ctx := context.Background()
	treasure := seedTreasure(t, s, "lamp")
	clue, err := s.Clues.Create(ctx, ClueInput{Text: "by the water", TreasureID: treasure})
	require.NoError(t, err)

	ok, err := s.Treasures.Delete(ctx, treasure)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Clues.GetByID(ctx, clue.ID)
	require.NoError(t, err)
	assert.Equal(t, treasure, got.TreasureID)
}

func TestUpdateWithMissingReferenceLeavesRow(t *testing.T) {
	s := testServices(t)
	ctx := context.Background()
	user := seedUser(t, s, "alice")
	game := seedGame(t, s, "riverside")
	treasure := seedTreasure(t, s, "lamp")
	clue, err := s.Clues.Create(ctx, ClueInput{Text: "by the water", TreasureID: treasure})
	require.NoError(t, err)
	achievement, err := s.Achievements.Create(ctx, AchievementInput{Name: "First find", Category: "finds", Description: "Find one treasure", PointsRequired: 10})
	require.NoError(t, err)

	t.Run("games-clues", func(t *testing.T) {
		gc, err := s.GameClues.Create(ctx, GameClueInput{GameID: game, ClueID: clue.ID})
		require.NoError(t, err)

		for _, in := range []GameClueInput{{GameID: 999, ClueID: clue.ID}, {GameID: game, ClueID: 999}} {
			ok, err := s.GameClues.Update(ctx, gc.ID, in)
			assert.ErrorIs(t, err, ErrReferenceNotFound)
			assert.False(t, ok)
		}

		got, err := s.GameClues.GetByID(ctx, gc.ID)
		require.NoError(t, err)
		assert.Equal(t, *gc, *got)
	})

	t.Run("users-achievements", func(t *testing.T) {
		ua, err := s.UserAchievements.Create(ctx, UserAchievementInput{UserID: user, AchievementID: achievement.ID})
		require.NoError(t, err)

		for _, in := range []UserAchievementInput{{UserID: 999, AchievementID: achievement.ID}, {UserID: user, AchievementID: 999}} {
			ok, err := s.UserAchievements.Update(ctx, ua.ID, in)
			assert.ErrorIs(t, err, ErrReferenceNotFound)
			assert.False(t, ok)
		}

		got, err := s.UserAchievements.GetByID(ctx, ua.ID)
		require.NoError(t, err)
		assert.Equal(t, user, got.UserID)
		assert.Equal(t, achievement.ID, got.AchievementID)
		assert.True(t, ua.DateReceived.Equal(got.DateReceived.Time))
	})

	t.Run("users-treasures", func(t *testing.T) {
		ut, err := s.UserTreasures.Create(ctx, UserTreasureInput{UserID: user, TreasureID: treasure, IsVerified: true})
		require.NoError(t, err)

		for _, in := range []UserTreasureInput{{UserID: 999, TreasureID: treasure}, {UserID: user, TreasureID: 999}} {
			ok, err := s.UserTreasures.Update(ctx, ut.ID, in)
			assert.ErrorIs(t, err, ErrReferenceNotFound)
			assert.False(t, ok)
		}

		got, err := s.UserTreasures.GetByID(ctx, ut.ID)
		require.NoError(t, err)
		assert.Equal(t, user, got.UserID)
		assert.Equal(t, treasure, got.TreasureID)
		assert.True(t, got.IsVerified)
		assert.True(t, ut.DateFound.Equal(got.DateFound.Time))
	})

	t.Run("leaderboards", func(t *testing.T) {
		lb, err := s.Leaderboards.Create(ctx, LeaderboardInput{PointsEarned: 5, UserID: user})
		require.NoError(t, err)

		ok, err := s.Leaderboards.Update(ctx, lb.ID, LeaderboardInput{PointsEarned: 50, UserID: 999})
		assert.ErrorIs(t, err, ErrReferenceNotFound)
		assert.False(t, ok)

		got, err := s.Leaderboards.GetByID(ctx, lb.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.PointsEarned)
		assert.Equal(t, user, got.UserID)
		assert.True(t, lb.Date.Equal(got.Date.Time))
	})
}
