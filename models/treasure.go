package models

// Treasure is something hidden in the world. URL points at its image or location page.
type Treasure struct {
	ID          int64  `json:"id" gorm:"column:treasure_id;primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"column:treasure_name;size:40;not null"`
	Description string `json:"desc" gorm:"column:treasure_description;type:text"`
	URL         string `json:"url" gorm:"column:treasure_url;type:text"`
	DateAdded   Date   `json:"date" gorm:"column:date_added;not null"`
}

func (Treasure) TableName() string { return "treasures" }
