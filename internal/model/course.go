package model

import "time"

// Course represents a course owned by a single user. EstimatedTime and
// MaterialsNeeded are optional and may be null in the database.
type Course struct {
	ID              int       `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	EstimatedTime   *string   `db:"estimated_time" json:"estimatedTime"`
	MaterialsNeeded *string   `db:"materials_needed" json:"materialsNeeded"`
	UserID          int       `db:"user_id" json:"userId"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"-"`

	// Owner is populated on reads that join the owning user.
	Owner User `db:"-" json:"-"`
}

// OwnerID returns the id of the owning user.
func (c *Course) OwnerID() int {
	return c.UserID
}
