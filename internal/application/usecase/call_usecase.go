package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// CallUseCase registro de llamadas. Solo quien creó la llamada puede
// modificarla o borrarla.
type CallUseCase struct {
	callRepo repository.CallRepository
	userRepo repository.UserRepository
}

// NewCallUseCase construye el caso de uso.
func NewCallUseCase(callRepo repository.CallRepository, userRepo repository.UserRepository) *CallUseCase {
	return &CallUseCase{callRepo: callRepo, userRepo: userRepo}
}

// List devuelve las llamadas más recientes primero.
func (uc *CallUseCase) List(page dto.PageRequest) ([]*dto.CallResponse, error) {
	page.DefaultPage()
	calls, err := uc.callRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CallResponse, 0, len(calls))
	for _, c := range calls {
		out = append(out, callToResponse(c))
	}
	return out, nil
}

// Create registra una llamada capturando el nombre visible del usuario.
func (uc *CallUseCase) Create(userID string, in dto.CreateCallRequest) (*dto.CallResponse, error) {
	if in.Caller == "" || in.Company == "" || in.Branch == "" || in.Subject == "" || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.CallPriorityNormal
	}
	now := time.Now()
	call := &entity.Call{
		ID:           uuid.New().String(),
		UserID:       userID,
		UserFullName: user.FullName(),
		Caller:       in.Caller,
		Company:      in.Company,
		Branch:       in.Branch,
		Subject:      in.Subject,
		Description:  in.Description,
		Priority:     priority,
		Status:       entity.CallStatusPending,
		Duration:     in.Duration,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.callRepo.Create(call); err != nil {
		return nil, err
	}
	return callToResponse(call), nil
}

// Update aplica los campos presentes; solo el creador de la llamada.
func (uc *CallUseCase) Update(callID, actingUserID string, in dto.UpdateCallRequest) (*dto.CallResponse, error) {
	call, err := uc.callRepo.GetByID(callID)
	if err != nil {
		return nil, err
	}
	if call == nil {
		return nil, domain.ErrNotFound
	}
	if call.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}

	if in.Caller != nil {
		call.Caller = *in.Caller
	}
	if in.Company != nil {
		call.Company = *in.Company
	}
	if in.Branch != nil {
		call.Branch = *in.Branch
	}
	if in.Subject != nil {
		call.Subject = *in.Subject
	}
	if in.Description != nil {
		call.Description = *in.Description
	}
	if in.Priority != nil {
		switch *in.Priority {
		case entity.CallPriorityHigh, entity.CallPriorityNormal, entity.CallPriorityLow:
			call.Priority = *in.Priority
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.CallStatusPending, entity.CallStatusInProgress, entity.CallStatusCompleted:
			call.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Duration != nil {
		if *in.Duration < 0 {
			return nil, domain.ErrInvalidInput
		}
		call.Duration = *in.Duration
	}
	if in.Notes != nil {
		call.Notes = *in.Notes
	}
	call.UpdatedAt = time.Now()

	if err := uc.callRepo.Update(call); err != nil {
		return nil, err
	}
	return callToResponse(call), nil
}

// Delete borra la llamada; solo el creador.
func (uc *CallUseCase) Delete(callID, actingUserID string) error {
	call, err := uc.callRepo.GetByID(callID)
	if err != nil {
		return err
	}
	if call == nil {
		return domain.ErrNotFound
	}
	if call.UserID != actingUserID {
		return domain.ErrForbidden
	}
	return uc.callRepo.Delete(callID)
}

func callToResponse(c *entity.Call) *dto.CallResponse {
	return &dto.CallResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		UserFullName: c.UserFullName,
		Caller:       c.Caller,
		Company:      c.Company,
		Branch:       c.Branch,
		Subject:      c.Subject,
		Description:  c.Description,
		Priority:     c.Priority,
		Status:       c.Status,
		Duration:     c.Duration,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}
