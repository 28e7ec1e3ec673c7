package services

import (
	"context"

	"github.com/google/uuid"

	"alphagym/internal/models/db_models"
	"alphagym/internal/repositories"
	"alphagym/pkg/utils"
)

// resolveActor loads the acting account once per request. Every scoped
// operation receives the result explicitly; there is no ambient
// current-user state anywhere below the middleware.
func resolveActor(ctx context.Context, repo repositories.AccountRepository, id uuid.UUID) (db_models.Actor, error) {
	account, err := repo.FindById(ctx, id)
	if err != nil {
		return db_models.Actor{}, utils.ErrDatabaseError
	}
	if account == nil {
		return db_models.Actor{}, utils.ErrInvalidCredentials
	}
	return db_models.Actor{ID: account.ID, Role: account.Role, GymID: account.GymID}, nil
}
