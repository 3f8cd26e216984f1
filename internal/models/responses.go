package models

// ProcessUserResponse is the success body for a processed user.
type ProcessUserResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
	Note    string `json:"note"`
}

// ValidationErrorResponse is the body returned when required identity
// fields are missing from the request.
type ValidationErrorResponse struct {
	Error string `json:"error"`
}

// InternalErrorResponse is the body returned for unexpected failures.
// Type carries the category of the underlying error.
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// NewProcessUserResponse builds the success body echoing the user's
// identity fields.
func NewProcessUserResponse(user *User) *ProcessUserResponse {
	return &ProcessUserResponse{
		Message: SuccessMessage,
		User:    user,
		Note:    DemoNote,
	}
}
