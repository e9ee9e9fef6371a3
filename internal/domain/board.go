package domain

import (
	"time"
)

// BoardPost is a single discussion entry. Bno is assigned by the store on
// insert and never reused. Writer is a free-text identity, not a foreign key.
type BoardPost struct {
	Bno       int64     `json:"bno"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Writer    string    `json:"writer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
