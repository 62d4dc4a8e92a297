package services

import (
	"context"
	"testing"

	"findly-api/config"
	"findly-api/database"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func testServices(t *testing.T) *Services {
	t.Helper()
	return New(testDB(t), bcrypt.MinCost)
}

func count[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(new(T)).Count(&n).Error)
	return n
}

func seedUser(t *testing.T, s *Services, name string) int64 {
	t.Helper()
	u, err := s.Users.Create(context.Background(), NewUserInput{Name: name, Email: name + "@findly.app", Password: "secret123"})
	require.NoError(t, err)
	return u.ID
}

func seedTreasure(t *testing.T, s *Services, name string) int64 {
	t.Helper()
	tr, err := s.Treasures.Create(context.Background(), TreasureInput{Name: name, Description: "under the bridge", URL: "https://findly.app/t/" + name})
	require.NoError(t, err)
	return tr.ID
}

func seedGame(t *testing.T, s *Services, name string) int64 {
	t.Helper()
	g, err := s.Games.Create(context.Background(), GameInput{Name: name, Type: "hunt", Description: "city wide", Difficulty: "easy"})
	require.NoError(t, err)
	return g.ID
}
