package users

import (
	"context"

	"petfirst-service/internal/app/models"
)

// UserRepository is a read-only lookup used for notification context.
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
