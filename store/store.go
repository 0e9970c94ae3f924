package store

import (
	"math/rand"
	"sync"

	"ticket_reseller/model"
)

// Store is the in-memory backing for the whole seller console. It is
// constructed once and passed by reference to every consumer; there is no
// package-level instance.
//
// The catalog (venues, events, sessions, areas) is generated at
// construction time and read-only afterwards, so it needs no lock. The
// mutable collections each get their own mutex; every exported operation
// is atomic per call, which is the only ordering guarantee offered.
type Store struct {
	venues   []model.Venue
	events   []model.Event
	sessions []model.Session
	areas    []model.Area

	ticketsMu sync.RWMutex
	tickets   []model.Ticket
	ticketSeq int

	ordersMu sync.RWMutex
	orders   []model.Order

	accountsMu       sync.RWMutex
	sellers          []model.Seller
	subAccounts      []model.SubAccount
	nextSubAccountID uint
}

// New builds a store populated with the demo catalog. All randomness in
// fixture generation flows through the given seed, so the same seed yields
// the same catalog.
func New(seed int64) *Store {
	s := &Store{}
	s.seedData(rand.New(rand.NewSource(seed)))
	return s
}
