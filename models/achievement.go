package models

// Achievement is a static award definition, unlocked once a user holds PointsRequired.
type Achievement struct {
	ID             int64  `json:"id" gorm:"column:achievement_id;primaryKey;autoIncrement"`
	Name           string `json:"name" gorm:"column:achievement_name;size:40;not null"`
	Category       string `json:"category" gorm:"column:achievement_category;size:20;not null"`
	Description    string `json:"descr" gorm:"column:achievement_description;type:text"`
	PointsRequired int64  `json:"pointsr" gorm:"column:points_required;not null"`
}

func (Achievement) TableName() string { return "achievements" }

// UserAchievement records that a user received an achievement.
type UserAchievement struct {
	ID            int64 `json:"uaid" gorm:"column:userachievement_id;primaryKey;autoIncrement"`
	UserID        int64 `json:"user_id" gorm:"column:user_id;not null;index"`
	AchievementID int64 `json:"achievement_id" gorm:"column:achievement_id;not null;index"`
	DateReceived  Date  `json:"date_r" gorm:"column:date_received;not null"`
}

func (UserAchievement) TableName() string { return "users-achievements" }
