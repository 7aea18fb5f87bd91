package repository

import (
	"context"
	"sync"

	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase/interfaces"
)

// UserMemoryRepository serves the dashboard user table from a fixed in-process
// dataset. User administration has no write path, so a read-only snapshot is
// all the port needs.
type UserMemoryRepository struct {
	mu    sync.RWMutex
	users []entities.User
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: seedUsers()}
}

func (r *UserMemoryRepository) List(ctx context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func seedUsers() []entities.User {
	return []entities.User{
		{ID: 1, Name: "Angel Verde", Email: "angel@rockstarservices.example", Role: entities.UserRoleAdmin, Status: entities.UserStatusActive},
		{ID: 2, Name: "Brenda Soto", Email: "brenda@rockstarservices.example", Role: entities.UserRoleManager, Status: entities.UserStatusActive},
		{ID: 3, Name: "Chris Dalton", Email: "chris@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusActive},
		{ID: 4, Name: "Dana Whitmore", Email: "dana@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusInactive},
		{ID: 5, Name: "Eduardo Pena", Email: "eduardo@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusActive},
		{ID: 6, Name: "Felicia Grant", Email: "felicia@rockstarservices.example", Role: entities.UserRoleManager, Status: entities.UserStatusActive},
		{ID: 7, Name: "Gavin Holt", Email: "gavin@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusActive},
		{ID: 8, Name: "Hannah Park", Email: "hannah@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusInactive},
		{ID: 9, Name: "Ivan Morales", Email: "ivan@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusActive},
		{ID: 10, Name: "Julia Fontaine", Email: "julia@rockstarservices.example", Role: entities.UserRoleAdmin, Status: entities.UserStatusActive},
		{ID: 11, Name: "Kevin O'Leary", Email: "kevin@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusActive},
		{ID: 12, Name: "Lena Vasquez", Email: "lena@rockstarservices.example", Role: entities.UserRoleManager, Status: entities.UserStatusInactive},
		{ID: 13, Name: "Marcus Webb", Email: "marcus@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusActive},
		{ID: 14, Name: "Nina Castellano", Email: "nina@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusActive},
		{ID: 15, Name: "Omar Sheikh", Email: "omar@rockstarservices.example", Role: entities.UserRoleEmployee, Status: entities.UserStatusInactive},
	}
}
