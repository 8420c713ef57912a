package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// CallRepository define el puerto de persistencia para Call.
type CallRepository interface {
	Create(call *entity.Call) error
	GetByID(id string) (*entity.Call, error)
	// List devuelve las llamadas más recientes primero.
	List(limit, offset int) ([]*entity.Call, error)
	Update(call *entity.Call) error
	Delete(id string) error
}
