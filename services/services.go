// Package services holds one repository per entity. All of them share the
// pool they are constructed with.
package services

import "gorm.io/gorm"

type Services struct {
	Users            *UserService
	Games            *GameService
	Treasures        *TreasureService
	Achievements     *AchievementService
	Clues            *ClueService
	Leaderboards     *LeaderboardService
	GameClues        *GameClueService
	GameUsers        *GameUserService
	UserAchievements *UserAchievementService
	UserTreasures    *UserTreasureService
}

func New(db *gorm.DB, bcryptCost int) *Services {
	users := NewUserService(db, bcryptCost)
	games := NewGameService(db)
	treasures := NewTreasureService(db)
	achievements := NewAchievementService(db)
	clues := NewClueService(db, treasures)

	return &Services{
		Users:            users,
		Games:            games,
		Treasures:        treasures,
		Achievements:     achievements,
		Clues:            clues,
		Leaderboards:     NewLeaderboardService(db, users),
		GameClues:        NewGameClueService(db, games, clues),
		GameUsers:        NewGameUserService(db, games, users),
		UserAchievements: NewUserAchievementService(db, users, achievements),
		UserTreasures:    NewUserTreasureService(db, users, treasures),
	}
}
