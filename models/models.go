package models

// All lists every table model, in migration order.
func All() []any {
	return []any{
		&User{},
		&Game{},
		&Treasure{},
		&Clue{},
		&Achievement{},
		&Leaderboard{},
		&GameClue{},
		&GameUser{},
		&UserAchievement{},
		&UserTreasure{},
	}
}
