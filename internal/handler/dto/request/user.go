package request

type CreateUserRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	Name            string `json:"name" binding:"required"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Role            string `json:"role" binding:"required"`
	Status          string `json:"status" binding:"required"`
	Phone           string `json:"phone,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
}

type UpdateUserRequest struct {
	Email           *string `json:"email,omitempty"`
	Name            *string `json:"name,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Role            *string `json:"role,omitempty"`
	Status          *string `json:"status,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	ShippingAddress *string `json:"shipping_address,omitempty"`
}
