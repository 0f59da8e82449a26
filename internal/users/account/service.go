// Copyright (c) 2026 Alor Foundation. All rights reserved.

package account

import (
	"context"
	"log/slog"

	"github.com/alorfdn/alor/internal/platform/sec"
	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/internal/users/auth"
)

// Service implements account administration use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new account [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
List returns a page of accounts, newest first.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*auth.User: Page of accounts
  - int: Total account count
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, limit, offset int) ([]*auth.User, int, error) {
	return service.repo.List(context, limit, offset)
}

/*
UpdateRole changes the role of an account.

Parameters:
  - context: context.Context
  - userID: string
  - role: sec.UserRole

Returns:
  - *auth.User: Updated entity
  - error: Validation, NotFound, or persistence failures
*/
func (service *Service) UpdateRole(context context.Context, userID string, role sec.UserRole) (*auth.User, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldRole, string(role), string(sec.RoleUser), string(sec.RoleAdmin))

	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.repo.UpdateRole(context, userID, role)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_role_updated",
		slog.String("user_id", userID),
		slog.String("role", string(role)),
	)
	return user, nil
}
