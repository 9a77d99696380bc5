package domain

import "time"

// BlogPost is a published article. Author is free text, not a User
// reference.
type BlogPost struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
}
