// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package account implements administrative management of user accounts.

It covers the admin-facing operations: listing registered members and
promoting or demoting their role. Self-service identity flows live in the
sibling auth package.
*/
package account

import (
	"context"

	"github.com/alorfdn/alor/internal/platform/sec"
	"github.com/alorfdn/alor/internal/users/auth"
)

// Field names for validation in the account domain.
const (
	FieldRole = "role"
)

// Repository defines the data access contract for account administration.
type Repository interface {

	/*
		List returns a page of accounts ordered by creation time, newest first.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*auth.User: Page of accounts
		  - int: Total account count
		  - error: Retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*auth.User, int, error)

	/*
		UpdateRole replaces the role of the given account.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - role: sec.UserRole

		Returns:
		  - *auth.User: Updated entity
		  - error: NotFound or persistence failures
	*/
	UpdateRole(context context.Context, userID string, role sec.UserRole) (*auth.User, error)
}
