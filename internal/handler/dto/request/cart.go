package request

// ChangeCartItemRequest carries a signed quantity delta for a vinyl.
// Delta is required and non-zero; a negative value shrinks or removes the
// line.
type ChangeCartItemRequest struct {
	VinylID int64 `json:"vinyl_id" binding:"required"`
	Delta   int   `json:"delta" binding:"required"`
}
