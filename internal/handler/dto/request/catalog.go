package request

type CreateVinylRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category"`
	Price    int64    `json:"price" binding:"gte=0"`
	Stock    *int64   `json:"stock,omitempty" binding:"omitempty,gte=0"`
	Images   []string `json:"images,omitempty"`
}

type UpdateVinylRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Price    *int64  `json:"price,omitempty" binding:"omitempty,gte=0"`
	Stock    *int64  `json:"stock,omitempty" binding:"omitempty,gte=0"`
}
