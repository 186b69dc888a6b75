package model

import "time"

// LeaderboardEntry is derived from users and the purchase ledger.
// It is recomputed on every change and never persisted.
type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	UID           string    `json:"uid"`
	Nickname      string    `json:"nickname"`
	Email         string    `json:"email"`
	LastLogin     time.Time `json:"lastLogin"`
	ItemsObtained int       `json:"itemsObtained"`
	ObtainedItems []string  `json:"obtainedItems"` // prize names in ledger order
}
