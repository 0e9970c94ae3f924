package store

import (
	"errors"
	"fmt"

	"ticket_reseller/constants"
	"ticket_reseller/model"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidTicket     = errors.New("invalid ticket input")
)

// legalTicketTransitions is the sanctioned lifecycle:
// draft -> on_shelf -> {off_shelf, sold}, off_shelf -> on_shelf.
var legalTicketTransitions = map[string][]string{
	constants.TICKET_DRAFT:     {constants.TICKET_ON_SHELF},
	constants.TICKET_ON_SHELF:  {constants.TICKET_OFF_SHELF, constants.TICKET_SOLD},
	constants.TICKET_OFF_SHELF: {constants.TICKET_ON_SHELF},
	constants.TICKET_SOLD:      {},
}

// CreateTicket validates the input, assigns a fresh id and appends the
// record. Missing status defaults to draft.
func (s *Store) CreateTicket(input model.CreateTicketInput) (model.Ticket, error) {
	if input.AreaID == "" {
		return model.Ticket{}, fmt.Errorf("%w: area_id is required", ErrInvalidTicket)
	}
	if input.Price <= 0 {
		return model.Ticket{}, fmt.Errorf("%w: price must be positive", ErrInvalidTicket)
	}
	if input.Quantity < 1 {
		return model.Ticket{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidTicket)
	}

	status := input.Status
	if status == "" {
		status = constants.TICKET_DRAFT
	}

	areaName := input.AreaName
	if areaName == "" {
		if area, ok := s.AreaByID(input.AreaID); ok {
			areaName = area.Name
		}
	}

	ticket := model.Ticket{
		ID:        "TKT-" + uuid.New().String()[:10],
		EventID:   input.EventID,
		SessionID: input.SessionID,
		AreaID:    input.AreaID,
		AreaName:  areaName,
		Row:       input.Row,
		Seat:      input.Seat,
		Price:     input.Price,
		Status:    status,
		Quantity:  input.Quantity,
	}

	s.ticketsMu.Lock()
	s.tickets = append(s.tickets, ticket)
	s.ticketsMu.Unlock()

	return ticket, nil
}

// UpdateTicket merges the non-nil patch fields onto the record. The status
// field is intentionally not checked against the lifecycle here: manual
// seller overrides rely on this being a raw write. New code paths should
// use TransitionTicketStatus instead.
func (s *Store) UpdateTicket(id string, input model.UpdateTicketInput) bool {
	s.ticketsMu.Lock()
	defer s.ticketsMu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID == id {
			copier.CopyWithOption(&s.tickets[i], &input, copier.Option{IgnoreEmpty: true})
			return true
		}
	}
	return false
}

// TransitionTicketStatus is the validating counterpart of UpdateTicket's
// raw status write.
func (s *Store) TransitionTicketStatus(id string, next string) error {
	s.ticketsMu.Lock()
	defer s.ticketsMu.Unlock()

	for i := range s.tickets {
		if s.tickets[i].ID != id {
			continue
		}
		current := s.tickets[i].Status
		for _, allowed := range legalTicketTransitions[current] {
			if allowed == next {
				s.tickets[i].Status = next
				return nil
			}
		}
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
	}
	return ErrTicketNotFound
}

// DeleteTicket removes the record permanently. Deleting an absent id is a
// no-op, not an error.
func (s *Store) DeleteTicket(id string) bool {
	s.ticketsMu.Lock()
	defer s.ticketsMu.Unlock()

	kept := s.tickets[:0]
	for _, t := range s.tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tickets = kept
	return true
}

func (s *Store) TicketsBySession(sessionID uint) []model.Ticket {
	s.ticketsMu.RLock()
	defer s.ticketsMu.RUnlock()

	out := []model.Ticket{}
	for _, t := range s.tickets {
		if t.SessionID == sessionID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) AllTickets() []model.Ticket {
	s.ticketsMu.RLock()
	defer s.ticketsMu.RUnlock()
	return append([]model.Ticket(nil), s.tickets...)
}

func (s *Store) TicketByID(id string) (model.Ticket, bool) {
	s.ticketsMu.RLock()
	defer s.ticketsMu.RUnlock()

	for _, t := range s.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return model.Ticket{}, false
}
