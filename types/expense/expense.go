package expense

// CreateRequest is the payload for booking a new expense.
type CreateRequest struct {
	CategoryID  uint    `json:"category_id"`
	Description *string `json:"description"`
	Amount      float64 `json:"amount"`
	Date        *string `json:"date"`
}

// UpdateRequest carries a partial update. Nil fields are left unchanged.
type UpdateRequest struct {
	CategoryID  *uint    `json:"category_id"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
}
