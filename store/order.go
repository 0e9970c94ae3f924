package store

import (
	"errors"
	"fmt"
	"time"

	"ticket_reseller/constants"
	"ticket_reseller/model"

	"github.com/jinzhu/copier"
)

var ErrOrderNotFound = errors.New("order not found")

var legalPaymentTransitions = map[string][]string{
	constants.PAYMENT_UNPAID: {constants.PAYMENT_PAID},
	constants.PAYMENT_PAID:   {},
}

// Shipping walks none -> preparing -> shipped -> delivered; returned is a
// side exit reachable from every state.
var legalShippingTransitions = map[string][]string{
	constants.SHIPPING_NONE:      {constants.SHIPPING_PREPARING, constants.SHIPPING_RETURNED},
	constants.SHIPPING_PREPARING: {constants.SHIPPING_SHIPPED, constants.SHIPPING_RETURNED},
	constants.SHIPPING_SHIPPED:   {constants.SHIPPING_DELIVERED, constants.SHIPPING_RETURNED},
	constants.SHIPPING_DELIVERED: {constants.SHIPPING_RETURNED},
	constants.SHIPPING_RETURNED:  {},
}

// UpdateOrder applies a patch to an order. For each status axis present in
// the patch with a value different from the current one, an audit entry is
// appended before the merge; a patch touching both axes appends two
// entries. No cross-axis validation happens here — a caller may mark an
// unpaid order delivered, and that is the caller's business.
func (s *Store) UpdateOrder(id string, input model.UpdateOrderInput) bool {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		order := &s.orders[i]
		now := time.Now()

		if input.PaymentStatus != nil && *input.PaymentStatus != order.PaymentStatus {
			order.Logs = append(order.Logs, model.OrderLog{
				StatusType: constants.STATUS_TYPE_PAYMENT,
				Status:     *input.PaymentStatus,
				Time:       now,
				Operator:   constants.OPERATOR_SELLER,
			})
		}
		if input.ShippingStatus != nil && *input.ShippingStatus != order.ShippingStatus {
			order.Logs = append(order.Logs, model.OrderLog{
				StatusType: constants.STATUS_TYPE_SHIPPING,
				Status:     *input.ShippingStatus,
				Time:       now,
				Operator:   constants.OPERATOR_SELLER,
			})
		}

		copier.CopyWithOption(order, &input, copier.Option{IgnoreEmpty: true})
		return true
	}
	return false
}

// TransitionOrder is the validating wrapper over UpdateOrder for one axis.
func (s *Store) TransitionOrder(id string, statusType string, next string) error {
	var legal map[string][]string
	switch statusType {
	case constants.STATUS_TYPE_PAYMENT:
		legal = legalPaymentTransitions
	case constants.STATUS_TYPE_SHIPPING:
		legal = legalShippingTransitions
	default:
		return fmt.Errorf("%w: unknown status type %q", ErrInvalidTransition, statusType)
	}

	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		order := &s.orders[i]

		current := order.PaymentStatus
		if statusType == constants.STATUS_TYPE_SHIPPING {
			current = order.ShippingStatus
		}

		ok := false
		for _, allowed := range legal[current] {
			if allowed == next {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, statusType, current, next)
		}

		order.Logs = append(order.Logs, model.OrderLog{
			StatusType: statusType,
			Status:     next,
			Time:       time.Now(),
			Operator:   constants.OPERATOR_SELLER,
		})
		if statusType == constants.STATUS_TYPE_PAYMENT {
			order.PaymentStatus = next
		} else {
			order.ShippingStatus = next
		}
		return nil
	}
	return ErrOrderNotFound
}

func (s *Store) AllOrders() []model.Order {
	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()
	return append([]model.Order(nil), s.orders...)
}

// RecentOrders returns the first orders in store order, which is what the
// dashboard listing shows. Limits below 1 fall back to 5.
func (s *Store) RecentOrders(limit int) []model.Order {
	if limit < 1 {
		limit = 5
	}

	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()

	if limit > len(s.orders) {
		limit = len(s.orders)
	}
	return append([]model.Order(nil), s.orders[:limit]...)
}

func (s *Store) OrderByID(id string) (model.Order, bool) {
	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}
