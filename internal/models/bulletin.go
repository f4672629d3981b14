package models

import "time"

// Announcement and Event are single-text bulletins: created, listed, deleted,
// never updated.

type Announcement struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Announcement string `json:"announcement" gorm:"not null;size:2000"`

	CreatedAt time.Time `json:"created_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

type Event struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Event string `json:"event" gorm:"not null;size:2000"`

	CreatedAt time.Time `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}
