package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campuslabs/campus-events-api/internal/models"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

// userReader is the User Directory collaborator used for display-name
// resolution and student lookups.
type userReader interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// nameResolvePolicy selects what a missing user means to the caller.
// Proposals tolerate a missing faculty record and leave the name blank;
// registration treats a missing student as a hard failure.
type nameResolvePolicy int

const (
	resolveSkipMissing nameResolvePolicy = iota
	resolveFailMissing
)

func resolveDisplayName(ctx context.Context, users userReader, id int64, policy nameResolvePolicy) (string, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if policy == resolveFailMissing {
				return "", appErrors.Clone(appErrors.ErrNotFound, "user not found")
			}
			return "", nil
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve user name")
	}
	return user.Name, nil
}
