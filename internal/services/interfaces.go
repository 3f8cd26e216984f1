package services

import (
	"context"

	"user-processing-api/internal/models"
)

// UserService defines the interface for user processing operations
type UserService interface {
	ProcessUser(ctx context.Context, payload *models.UserPayload) (*ProcessUserResult, error)
}

// ProcessStatus describes the outcome of processing a user payload.
type ProcessStatus string

const (
	ProcessAccepted ProcessStatus = "accepted"
	ProcessRejected ProcessStatus = "rejected"
)

// ProcessUserResult is the explicit outcome of a process-user call.
// Rejections are ordinary results carrying the reason for the caller to
// report, not errors; errors are reserved for unexpected failures.
type ProcessUserResult struct {
	Status ProcessStatus `json:"status"`
	User   *models.User  `json:"user,omitempty"`
	Reason string        `json:"reason,omitempty"`
}

// Accepted returns true if the payload passed validation.
func (r *ProcessUserResult) Accepted() bool {
	return r.Status == ProcessAccepted
}
