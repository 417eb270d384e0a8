package domain

import "time"

// Category labels transactions and carries budgets. Categories form a tree
// via ParentID; only one level of children is ever materialized (lookup by
// parent pointer, no recursive closure).
type Category struct {
	CategoryID  string  `json:"categoryID"` // Primary Key (UUID)
	UserID      string  `json:"userID"`     // FK -> users.user_id (Not Null)
	Name        string  `json:"name"`
	ParentID    *string `json:"parentID,omitempty"` // Nullable FK -> categories.category_id
	Description string  `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
}
