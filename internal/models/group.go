package models

import "time"

type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PrepType    string    `json:"prep_type"`
	CreatorID   string    `json:"creator_id"`
	Members     []string  `json:"members"` // User IDs, creator first
	CreatedAt   time.Time `json:"created_at"`
}
