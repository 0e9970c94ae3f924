package store

import "ticket_reseller/constants"

type DashboardStats struct {
	TotalRevenue     int `json:"totalRevenue"`
	ProcessingOrders int `json:"processingOrders"`
	ActiveTickets    int `json:"activeTickets"`
}

// DashboardStats recomputes the rollup from scratch on every call; nothing
// is cached or maintained incrementally.
//
// Revenue keys off the old single status field kept in
// LegacyStatus: only an explicit "cancelled" excludes an order, anything
// else (including orders that never had the field) counts. An order is
// processing while either axis is still in flight, or while its legacy
// status says so.
func (s *Store) DashboardStats() DashboardStats {
	stats := DashboardStats{}

	s.ordersMu.RLock()
	for _, o := range s.orders {
		if o.LegacyStatus != "cancelled" {
			stats.TotalRevenue += o.TotalAmount
		}
		if o.PaymentStatus == constants.PAYMENT_UNPAID ||
			o.ShippingStatus == constants.SHIPPING_PREPARING ||
			o.LegacyStatus == "pending" || o.LegacyStatus == "shipping" {
			stats.ProcessingOrders++
		}
	}
	s.ordersMu.RUnlock()

	s.ticketsMu.RLock()
	for _, t := range s.tickets {
		if t.Status == constants.TICKET_ON_SHELF {
			stats.ActiveTickets++
		}
	}
	s.ticketsMu.RUnlock()

	return stats
}
