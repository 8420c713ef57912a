package repository

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdateLastLogin marca la fecha de último ingreso tras un login exitoso.
	UpdateLastLogin(id string, at time.Time) error
	List(limit, offset int) ([]*entity.User, error)
}
