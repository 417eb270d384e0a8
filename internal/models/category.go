package models

import "time"

// Category mirrors the categories table. ParentID is nullable.
type Category struct {
	CategoryID  string    `db:"category_id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	ParentID    *string   `db:"parent_id"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
