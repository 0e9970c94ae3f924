package handler

import "ticket_reseller/store"

// Handler bundles the HTTP endpoints around one shared store instance.
type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}
