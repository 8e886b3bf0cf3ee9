package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned for ids that do not exist or belong to a
// disabled property; callers cannot tell the two apart.
var ErrNotFound = errors.New("property not found")

// Property is the persisted listing. Price is a non-negative amount in COP;
// the storage layer keeps it decimal-exact, float64 is only the in-process
// representation.
type Property struct {
	ID           string // ObjectId hex, assigned by the database
	OwnerID      string
	Name         string
	Address      string
	Price        float64
	ImageURL     string
	InternalCode string
	Year         int
	Enabled      bool // soft-delete flag; disabled listings are invisible
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
