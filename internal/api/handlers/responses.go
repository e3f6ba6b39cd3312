package handlers

// SuccessResponse is the envelope for successful requests
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Error   string            `json:"error" example:"Something went wrong"`
	Fields  map[string]string `json:"fields,omitempty"`
}
