package models

// Leaderboard is one dated points entry for a user.
type Leaderboard struct {
	ID           int64 `json:"id" gorm:"column:leaderboard_id;primaryKey;autoIncrement"`
	Date         Date  `json:"l_date" gorm:"column:leaderboard_date;not null"`
	PointsEarned int64 `json:"points_e" gorm:"column:points_earned;not null"`
	UserID       int64 `json:"user_id" gorm:"column:user_id;not null;index"`
}

func (Leaderboard) TableName() string { return "leaderboards" }
