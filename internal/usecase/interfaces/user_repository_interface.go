package interfaces

import (
	"context"

	"rockstar_services/internal/domain/entities"
)

// IUserRepository backs the dashboard user list.
type IUserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
}
