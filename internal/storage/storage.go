package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mleow/account-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on email.
var ErrAlreadyExists = errors.New("record already exists")

// UserUpdate carries a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Birthdate    *time.Time
	PasswordHash *string
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.Birthdate == nil && u.PasswordHash == nil
}

// UserStore captures persistence operations needed by handlers. The store's
// own uniqueness constraint on email is the source of truth for duplicate
// registrations.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (models.User, error)
}
