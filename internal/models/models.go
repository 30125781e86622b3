package models

import "time"

// Job is one normalized listing from the external search provider.
// Rows only ever enter through a full cache refresh, so IDs are not stable
// across refresh cycles.
type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`

	Title   string `json:"title"`
	Company string `json:"company"`
	// Location is never empty: the mapper falls back city -> state -> "Remote".
	Location   string `gorm:"not null" json:"location"`
	Experience int    `gorm:"not null;default:0" json:"experience"`
	Link       string `json:"link"`
}
