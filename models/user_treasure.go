package models

// UserTreasure records a user finding a treasure; IsVerified is set once the find is confirmed.
type UserTreasure struct {
	ID         int64 `json:"utid" gorm:"column:usertreasure_id;primaryKey;autoIncrement"`
	UserID     int64 `json:"user_id" gorm:"column:user_id;not null;index"`
	TreasureID int64 `json:"treasure_id" gorm:"column:treasure_id;not null;index"`
	IsVerified bool  `json:"is_v" gorm:"column:is_verified;not null"`
	DateFound  Date  `json:"date_f" gorm:"column:date_found;not null"`
}

func (UserTreasure) TableName() string { return "users-treasures" }
