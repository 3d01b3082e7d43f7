package parcel

import (
	parcelModel "joyful-cargo/models/parcel"
)

// CreateRequest is the payload for registering a new parcel.
type CreateRequest struct {
	CustomerName   string             `json:"customer_name"`
	Phone          string             `json:"phone"`
	AltPhone       *string            `json:"alt_phone"`
	Product        string             `json:"product"`
	Destination    string             `json:"destination"`
	ExpectedAmount *float64           `json:"expected_amount"`
	Courier        *string            `json:"courier"`
	Status         parcelModel.Status `json:"status"`
}

// UpdateRequest carries a partial update. Nil fields are left unchanged.
type UpdateRequest struct {
	CustomerName   *string             `json:"customer_name"`
	Phone          *string             `json:"phone"`
	AltPhone       *string             `json:"alt_phone"`
	Product        *string             `json:"product"`
	Destination    *string             `json:"destination"`
	ExpectedAmount *float64            `json:"expected_amount"`
	Courier        *string             `json:"courier"`
	Status         *parcelModel.Status `json:"status"`
}

// StatusRequest is the payload for the transition-only endpoint.
type StatusRequest struct {
	Status parcelModel.Status `json:"status"`
	Notes  *string            `json:"notes"`
}
