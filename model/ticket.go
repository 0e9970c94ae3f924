package model

// Ticket is a seller inventory record bound to (event, session, area).
// Status is one of draft, on_shelf, off_shelf, sold.
type Ticket struct {
	ID        string `json:"id"`
	EventID   uint   `json:"event_id"`
	SessionID uint   `json:"session_id"`
	AreaID    string `json:"area_id"`
	AreaName  string `json:"area_name"`
	Row       int    `json:"row"`
	Seat      int    `json:"seat"`
	Price     int    `json:"price"`
	Status    string `json:"status"`
	Quantity  int    `json:"quantity"`
}

type CreateTicketInput struct {
	EventID   uint   `json:"event_id" validate:"omitempty,gt=0"`
	SessionID uint   `json:"session_id" validate:"omitempty,gt=0"`
	AreaID    string `json:"area_id" validate:"required"`
	AreaName  string `json:"area_name"`
	Row       int    `json:"row" validate:"omitempty,gte=1"`
	Seat      int    `json:"seat" validate:"omitempty,gte=1"`
	Price     int    `json:"price" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Status    string `json:"status" validate:"omitempty,oneof=draft on_shelf off_shelf sold"`
}

// UpdateTicketInput merges onto an existing ticket. Nil fields are left
// untouched. Status is deliberately unchecked here (legacy contract);
// TransitionTicketInput is the validating path for new call sites.
type UpdateTicketInput struct {
	AreaID   *string `json:"area_id"`
	AreaName *string `json:"area_name"`
	Row      *int    `json:"row"`
	Seat     *int    `json:"seat"`
	Price    *int    `json:"price" validate:"omitempty,gt=0"`
	Quantity *int    `json:"quantity" validate:"omitempty,gte=1"`
	Status   *string `json:"status"`
}

type TransitionTicketInput struct {
	Status string `json:"status" validate:"required,oneof=draft on_shelf off_shelf sold"`
}
