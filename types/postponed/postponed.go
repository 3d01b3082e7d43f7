package postponed

// UpdateRequest carries a partial update of a postponed order.
// NewDeliveryDate accepts RFC 3339 timestamps, with or without the
// trailing UTC designator.
type UpdateRequest struct {
	NewDeliveryDate *string `json:"new_delivery_date"`
	Notes           *string `json:"notes"`
}
