package model

import "time"

type RecipientInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PaymentInfo is an opaque gateway snapshot; no gateway integration here.
type PaymentInfo struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

type OrderItem struct {
	TicketName string `json:"ticket_name"`
	Price      int    `json:"price"`
}

// OrderLog is one entry of the append-only audit trail. StatusType names
// the axis that changed ("payment" or "shipping").
type OrderLog struct {
	StatusType string    `json:"status_type"`
	Status     string    `json:"status"`
	Time       time.Time `json:"time"`
	Operator   string    `json:"operator"`
}

// Order carries two independent status axes. TotalAmount is fixed at
// creation time as the sum of item prices and is not re-derived on edits.
// LegacyStatus is the old single status field, retained only for
// the dashboard aggregate; empty means "not cancelled".
type Order struct {
	ID             string        `json:"id"`
	BuyerID        string        `json:"buyer_id"`
	BuyerName      string        `json:"buyer_name"`
	EventTitle     string        `json:"event_title"`
	SessionTime    string        `json:"session_time"`
	Venue          string        `json:"venue"`
	RecipientInfo  RecipientInfo `json:"recipient_info"`
	PaymentInfo    *PaymentInfo  `json:"payment_info"`
	TrackingNumber *string       `json:"tracking_number"`
	Items          []OrderItem   `json:"items"`
	TotalAmount    int           `json:"total_amount"`
	PaymentStatus  string        `json:"payment_status"`
	ShippingStatus string        `json:"shipping_status"`
	LegacyStatus   string        `json:"status,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	Logs           []OrderLog    `json:"logs"`
}

// UpdateOrderInput merges onto an existing order. Each status axis present
// with a different value appends one audit log entry before the merge.
type UpdateOrderInput struct {
	PaymentStatus  *string        `json:"payment_status" validate:"omitempty,oneof=unpaid paid"`
	ShippingStatus *string        `json:"shipping_status" validate:"omitempty,oneof=none preparing shipped delivered returned"`
	TrackingNumber *string        `json:"tracking_number"`
	RecipientInfo  *RecipientInfo `json:"recipient_info"`
	PaymentInfo    *PaymentInfo   `json:"payment_info"`
}

type TransitionOrderInput struct {
	StatusType string `json:"status_type" validate:"required,oneof=payment shipping"`
	Status     string `json:"status" validate:"required"`
}
