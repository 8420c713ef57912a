package usecase

import (
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// UserUseCase consultas de usuarios (el alta y el login viven en auth).
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List devuelve usuarios paginados, sin el hash de password.
func (uc *UserUseCase) List(page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		r := toUserResponse(u)
		out = append(out, &r)
	}
	return out, nil
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	r := toUserResponse(user)
	return &r, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		Role:        string(u.Role),
		Status:      u.Status,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
