package constants

// Response message keys
const (
	ERROR_INPUT                = "ERROR_INPUT"
	ERROR_CREATE               = "ERROR_CREATE"
	ERROR_PARSE_DATA_TO_LOCALS = "ERROR_PARSE_DATA_TO_LOCALS"
	DATA_INPUT_IS_NOT_NUMBER   = "DATA_INPUT_IS_NOT_NUMBER"
	TICKET_NOT_FOUND           = "TICKET_NOT_FOUND"
	ORDER_NOT_FOUND            = "ORDER_NOT_FOUND"
	EVENT_NOT_FOUND            = "EVENT_NOT_FOUND"
	SESSION_NOT_FOUND          = "SESSION_NOT_FOUND"
	AREA_NOT_FOUND             = "AREA_NOT_FOUND"
	SUB_ACCOUNT_NOT_FOUND      = "SUB_ACCOUNT_NOT_FOUND"
	INVALID_STATUS_TRANSITION  = "INVALID_STATUS_TRANSITION"
	CAN_NOT_HASH_PASSWORD      = "CAN_NOT_HASH_PASSWORD"
)

// Ticket status
const (
	TICKET_DRAFT     = "draft"
	TICKET_ON_SHELF  = "on_shelf"
	TICKET_OFF_SHELF = "off_shelf"
	TICKET_SOLD      = "sold"
)

// Order payment status
const (
	PAYMENT_UNPAID = "unpaid"
	PAYMENT_PAID   = "paid"
)

// Order shipping status
const (
	SHIPPING_NONE      = "none"
	SHIPPING_PREPARING = "preparing"
	SHIPPING_SHIPPED   = "shipped"
	SHIPPING_DELIVERED = "delivered"
	SHIPPING_RETURNED  = "returned"
)

// Status axes recorded in the order audit log
const (
	STATUS_TYPE_PAYMENT  = "payment"
	STATUS_TYPE_SHIPPING = "shipping"
)

// Seller / sub-account status
const (
	ACCOUNT_ACTIVE   = "active"
	ACCOUNT_INACTIVE = "inactive"
	SELLER_PENDING   = "pending"
)

const OPERATOR_SELLER = "Seller"
