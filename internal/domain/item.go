package domain

import "time"

// Item is the domain entity. It does not depend on Gin, Postgres or Redis.
type Item struct {
	ID        int64
	Name      string
	Completed bool
	// CompletedAt is non-nil exactly while Completed is true.
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
