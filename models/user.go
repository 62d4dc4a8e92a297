package models

// User is a player account. Password holds a bcrypt hash and never leaves the service.
type User struct {
	ID       int64  `json:"id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"column:username;size:40;not null;index"`
	Email    string `json:"email" gorm:"column:user_email;not null"`
	Password string `json:"-" gorm:"column:user_password;not null"`
	Points   int64  `json:"points" gorm:"column:user_points;not null;default:0"`
	Rewards  int64  `json:"rewards" gorm:"column:user_rewards;not null;default:0"`
}

func (User) TableName() string { return "users" }
