package response

type LoginResponse struct {
	User *UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
