package model

import "time"

// Recipe is a user-owned recipe. The schema enforces NOT NULL on every
// required column and, on MySQL, a CHECK that instructions hold at least
// 50 characters (added at migration time, see cmd/main.go).
type Recipe struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	UserID            uint64    `gorm:"not null" json:"user_id"`
	Title             string    `gorm:"not null;size:100" json:"title"`
	Instructions      string    `gorm:"type:text;not null" json:"instructions"`
	MinutesToComplete int       `gorm:"not null" json:"minutes_to_complete"`
	CreatedAt         time.Time `json:"created_at"`
	User              User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
