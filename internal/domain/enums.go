package domain

// OrderStatus represents the status of a dropship order.
//
// There is no transition table: order processing overwrites the field freely
// (pending -> processing on supplier acceptance, -> failed on supplier error)
// and the callback path may re-apply a status it has already set.
type OrderStatus string

const (
	// PENDING - order created, supplier not yet contacted
	OrderStatusPending OrderStatus = "pending"
	// PROCESSING - supplier accepted the order
	OrderStatusProcessing OrderStatus = "processing"
	// SHIPPED - supplier handed the parcel to the carrier
	OrderStatusShipped OrderStatus = "shipped"
	// COMPLETED - delivered to the customer
	OrderStatusCompleted OrderStatus = "completed"
	// FAILED - automatic order processing gave up
	OrderStatusFailed OrderStatus = "failed"
)

// IsValid checks if the order status is one of the known values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusCompleted,
		OrderStatusFailed:
		return true
	default:
		return false
	}
}
