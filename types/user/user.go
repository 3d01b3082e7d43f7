package user

// CreateRequest is the admin payload for creating a user.
type CreateRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
}

// UpdateRequest carries a partial update of profile fields.
type UpdateRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// RoleRequest changes a user's role.
type RoleRequest struct {
	Role string `json:"role"`
}
