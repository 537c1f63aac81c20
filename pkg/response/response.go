package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}
