package compose

// StartComposeDTO asks for a compose of every update of a release carrying the request.
type StartComposeDTO struct {
	Release string `json:"release" binding:"required" example:"F40"`
	Request string `json:"request" binding:"required,oneof=testing stable" example:"stable"`
}

// StateDTO reports progress of a running compose.
type StateDTO struct {
	State        ComposeState    `json:"state" binding:"required"`
	Checkpoints  map[string]bool `json:"checkpoints"`
	ErrorMessage string          `json:"error_message"`
}

// View is a compose with the aliases of the updates it holds.
type View struct {
	Compose
	Updates []string `json:"updates"`
}
