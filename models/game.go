// models/game.go
package models

type Game struct {
	ID          int64  `json:"id" gorm:"column:game_id;primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:game_name;size:40;not null"`
	Type        string `json:"type" gorm:"column:game_type;size:20;not null"`
	Description string `json:"desc" gorm:"column:game_description;type:text"`
	Difficulty  string `json:"diff" gorm:"column:game_difficulty;size:14"`
}

func (Game) TableName() string { return "games" }
