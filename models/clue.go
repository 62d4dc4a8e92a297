package models

// Clue hints at exactly one treasure.
type Clue struct {
	ID         int64  `json:"id" gorm:"column:clue_id;primaryKey;autoIncrement"`
	Text       string `json:"ctext" gorm:"column:clue_text;type:text;not null"`
	DateIssued Date   `json:"date_i" gorm:"column:date_issued;not null"`
	TreasureID int64  `json:"treasure_id" gorm:"column:treasure_id;not null;index"`
}

func (Clue) TableName() string { return "clues" }
