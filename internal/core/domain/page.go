package domain

import "time"

const (
	DefaultPageLimit = 25
	MaxPageLimit     = 100
)

// Page is offset/limit pagination.
type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Period is a creation-time window; each bound is optional and inclusive.
type Period struct {
	After  *time.Time
	Before *time.Time
}

// Contains reports whether t falls inside the window.
func (p Period) Contains(t time.Time) bool {
	if p.After != nil && t.Before(*p.After) {
		return false
	}
	if p.Before != nil && t.After(*p.Before) {
		return false
	}
	return true
}
