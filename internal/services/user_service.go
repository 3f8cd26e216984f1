package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"user-processing-api/internal/models"
)

// userService implements the UserService interface
type userService struct {
	logger *logrus.Logger
}

// NewUserService creates a new user service instance
func NewUserService(logger *logrus.Logger) UserService {
	return &userService{
		logger: logger,
	}
}

// ProcessUser validates the identity fields of a payload and echoes
// them back. Payloads with a missing or empty id or name are rejected
// with the reason the endpoint reports to the client.
func (s *userService) ProcessUser(ctx context.Context, payload *models.UserPayload) (*ProcessUserResult, error) {
	if payload == nil {
		return nil, fmt.Errorf("user payload cannot be nil")
	}

	if payload.HasMissingFields() {
		return &ProcessUserResult{
			Status: ProcessRejected,
			Reason: models.MissingFieldsMessage,
		}, nil
	}

	s.logger.WithFields(logrus.Fields{
		"id":   payload.ID,
		"name": payload.Name,
	}).Info("Processing user")

	return &ProcessUserResult{
		Status: ProcessAccepted,
		User: &models.User{
			ID:   payload.ID,
			Name: payload.Name,
		},
	}, nil
}
