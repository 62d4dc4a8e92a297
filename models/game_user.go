package models

type GameUserStatus string

const (
	StatusCompleted    GameUserStatus = "Completed"
	StatusNotCompleted GameUserStatus = "Not Completed"
)

func (s GameUserStatus) Valid() bool {
	return s == StatusCompleted || s == StatusNotCompleted
}

// GameUser is a user's participation in a game.
type GameUser struct {
	ID            int64          `json:"guid" gorm:"column:gameuser_id;primaryKey;autoIncrement"`
	GameID        int64          `json:"game_id" gorm:"column:game_id;not null;index"`
	UserID        int64          `json:"user_id" gorm:"column:user_id;not null;index"`
	Score         int64          `json:"score" gorm:"column:score;not null;default:0"`
	Status        GameUserStatus `json:"status" gorm:"column:status;size:16;not null"`
	DateCompleted Date           `json:"date_c" gorm:"column:date_completed;not null"`
}

func (GameUser) TableName() string { return "games-users" }

// GameClue places a clue in a game.
type GameClue struct {
	ID     int64 `json:"gcid" gorm:"column:gameclue_id;primaryKey;autoIncrement"`
	GameID int64 `json:"game_id" gorm:"column:game_id;not null;index"`
	ClueID int64 `json:"clue_id" gorm:"column:clue_id;not null;index"`
}

func (GameClue) TableName() string { return "games-clues" }
