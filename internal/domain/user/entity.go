package user

import (
	"time"

	"github.com/google/uuid"
)

// User is owned by the external auth service; bookings only read it to
// address the payer and to check the actor's role.
type User struct {
	id        uuid.UUID
	email     Email
	name      string
	role      Role
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructUser(id uuid.UUID, email Email, name string, role Role, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
