package domain

import "time"

// CategoryAll is the pseudo-category used only in filters; it matches
// every service. The real category set is whatever exists in the data.
const CategoryAll = "all"

// Service is a catalog entry. Category and Duration are free-form
// strings, not enums or structured intervals.
type Service struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	Image           string    `json:"image"`
	Featured        bool      `json:"featured"`
	Tags            []string  `json:"tags"`
	Duration        string    `json:"duration"`
	CreatedAt       time.Time `json:"createdAt"`
}
