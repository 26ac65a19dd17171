// Package entity defines the core business entities for the domain layer.
package entity

// Seed holds the three ordered collections the ledger starts from.
type Seed struct {
	Goals        []*Goal
	Transactions []*Transaction
	Challenges   []*Challenge
}
