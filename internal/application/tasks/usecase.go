package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	domaintask "github.com/jhoicas/Gestion-api/internal/domain/task"
)

const systemUserName = "Sistema"

// TaskUseCase motor del ciclo de vida de tareas: transiciones de estado,
// reglas de autorización por asignado/creador y rastro de auditoría.
// Cada mutación escribe la tarea y su entrada de historial en una transacción.
type TaskUseCase struct {
	txRunner    TxRunner
	taskRepo    repository.TaskRepository
	historyRepo repository.TaskHistoryRepository
	userRepo    repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(
	txRunner TxRunner,
	taskRepo repository.TaskRepository,
	historyRepo repository.TaskHistoryRepository,
	userRepo repository.UserRepository,
) *TaskUseCase {
	return &TaskUseCase{
		txRunner:    txRunner,
		taskRepo:    taskRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
	}
}

// displayName nombre visible del usuario, o "Sistema" si no se resuelve.
func (uc *TaskUseCase) displayName(userID string) string {
	if userID == "" {
		return systemUserName
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return systemUserName
	}
	return user.FullName()
}

// Create persiste una tarea nueva y su primera entrada de historial
// (sin valor previo, instantánea nueva) en la misma transacción.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" || in.Description == "" || in.AssignedUserID == "" || in.CreatorID == "" {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse("2006-01-02", in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}

	assignee, err := uc.userRepo.GetByID(in.AssignedUserID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	task := &entity.Task{
		ID:             uuid.New().String(),
		Title:          in.Title,
		Description:    in.Description,
		Priority:       priority,
		AssigneeName:   assignee.FullName(),
		AssignedUserID: in.AssignedUserID,
		CreatorID:      in.CreatorID,
		DueDate:        dueDate,
		Status:         entity.TaskBacklog,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	creatorName := uc.displayName(in.CreatorID)
	entry := &entity.TaskHistory{
		ID:          uuid.New().String(),
		TaskID:      task.ID,
		Action:      "Nueva tarea creada",
		UserName:    creatorName,
		CreatorName: creatorName,
		NewValue:    task.Snapshot(),
		CreatedAt:   now,
	}

	err = uc.txRunner.RunTaskAudit(ctx, func(
		taskRepo repository.TaskRepository,
		historyRepo repository.TaskHistoryRepository,
	) error {
		if err := taskRepo.Create(task); err != nil {
			return err
		}
		return historyRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// List devuelve las tareas no eliminadas, más recientes primero.
func (uc *TaskUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.TaskResponse, error) {
	page.DefaultPage()
	list, err := uc.taskRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, taskToResponse(t))
	}
	return out, nil
}

// Update aplica una actualización parcial respetando las reglas del ciclo de
// vida:
//
//   - Cambio de estado: solo el asignado; la transición debe estar en la tabla
//     (backlog→inProgress, inProgress→review, review→done|inProgress,
//     done→review). Se actualiza únicamente el estado.
//   - Campos básicos (título, descripción, prioridad, fecha límite): solo el
//     creador; todos los campos enviados se aplican de una vez.
//
// Toda mutación deja exactamente una entrada de historial con instantáneas
// antes/después, en la misma transacción que la tarea.
func (uc *TaskUseCase) Update(ctx context.Context, taskID, actingUserID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.IsDeleted {
		return nil, domain.ErrNotFound
	}

	switch {
	case in.Status != nil && entity.TaskStatus(*in.Status) != task.Status:
		return uc.updateStatus(ctx, task, actingUserID, entity.TaskStatus(*in.Status))
	case in.Title != nil || in.Description != nil || in.Priority != nil || in.DueDate != nil:
		return uc.updateFields(ctx, task, actingUserID, in)
	default:
		// Nada que cambiar: se devuelve la tarea tal cual, sin historial.
		return taskToResponse(task), nil
	}
}

func (uc *TaskUseCase) updateStatus(ctx context.Context, task *entity.Task, actingUserID string, newStatus entity.TaskStatus) (*dto.TaskResponse, error) {
	if !domaintask.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	// Solo el asignado puede mover la tarea en el tablero.
	if task.AssignedUserID != actingUserID {
		return nil, domain.ErrForbidden
	}
	if !domaintask.CanTransition(task.Status, newStatus) {
		return nil, &domain.InvalidTransitionError{
			From: domaintask.Label(task.Status),
			To:   domaintask.Label(newStatus),
		}
	}

	prev := task.Snapshot()
	action := fmt.Sprintf("Estado de la tarea actualizado de %q a %q",
		domaintask.Label(task.Status), domaintask.Label(newStatus))

	task.Status = newStatus
	task.UpdatedAt = time.Now()

	entry := &entity.TaskHistory{
		ID:            uuid.New().String(),
		TaskID:        task.ID,
		Action:        action,
		UserName:      uc.displayName(actingUserID),
		CreatorName:   task.AssigneeName,
		PreviousValue: prev,
		NewValue:      task.Snapshot(),
		CreatedAt:     task.UpdatedAt,
	}

	err := uc.txRunner.RunTaskAudit(ctx, func(
		taskRepo repository.TaskRepository,
		historyRepo repository.TaskHistoryRepository,
	) error {
		if err := taskRepo.Update(task); err != nil {
			return err
		}
		return historyRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

func (uc *TaskUseCase) updateFields(ctx context.Context, task *entity.Task, actingUserID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	// Los campos básicos solo los edita quien creó la tarea.
	if task.CreatorID != actingUserID {
		return nil, domain.ErrForbidden
	}

	prev := task.Snapshot()
	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		switch *in.Priority {
		case entity.TaskPriorityHigh, entity.TaskPriorityMedium, entity.TaskPriorityLow:
			task.Priority = *in.Priority
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		task.DueDate = dueDate
	}
	task.UpdatedAt = time.Now()

	entry := &entity.TaskHistory{
		ID:            uuid.New().String(),
		TaskID:        task.ID,
		Action:        "Información de la tarea actualizada",
		UserName:      uc.displayName(actingUserID),
		CreatorName:   task.AssigneeName,
		PreviousValue: prev,
		NewValue:      task.Snapshot(),
		CreatedAt:     task.UpdatedAt,
	}

	err := uc.txRunner.RunTaskAudit(ctx, func(
		taskRepo repository.TaskRepository,
		historyRepo repository.TaskHistoryRepository,
	) error {
		if err := taskRepo.Update(task); err != nil {
			return err
		}
		return historyRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return taskToResponse(task), nil
}

// Delete marca la tarea como eliminada (borrado lógico, nunca DELETE físico);
// solo el creador puede hacerlo. La entrada de historial lleva la instantánea
// previa y ningún valor nuevo, y sobrevive al borrado.
func (uc *TaskUseCase) Delete(ctx context.Context, taskID, actingUserID string) error {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil || task.IsDeleted {
		return domain.ErrNotFound
	}
	if task.CreatorID != actingUserID {
		return domain.ErrForbidden
	}

	prev := task.Snapshot()
	task.IsDeleted = true
	task.UpdatedAt = time.Now()

	entry := &entity.TaskHistory{
		ID:            uuid.New().String(),
		TaskID:        task.ID,
		Action:        "Tarea eliminada",
		UserName:      uc.displayName(actingUserID),
		CreatorName:   task.AssigneeName,
		PreviousValue: prev,
		CreatedAt:     task.UpdatedAt,
	}

	return uc.txRunner.RunTaskAudit(ctx, func(
		taskRepo repository.TaskRepository,
		historyRepo repository.TaskHistoryRepository,
	) error {
		if err := taskRepo.Update(task); err != nil {
			return err
		}
		return historyRepo.Create(entry)
	})
}

// History devuelve el historial de la tarea, más reciente primero, con las
// instantáneas decodificadas. Funciona también para tareas eliminadas.
func (uc *TaskUseCase) History(ctx context.Context, taskID string) ([]*dto.TaskHistoryResponse, error) {
	entries, err := uc.historyRepo.ListByTask(taskID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.TaskHistoryResponse{
			ID:            e.ID,
			TaskID:        e.TaskID,
			Action:        e.Action,
			UserName:      e.UserName,
			CreatorName:   e.CreatorName,
			PreviousValue: snapshotToDTO(e.PreviousValue),
			NewValue:      snapshotToDTO(e.NewValue),
			CreatedAt:     e.CreatedAt,
		})
	}
	return out, nil
}

func snapshotToDTO(s *entity.TaskSnapshot) *dto.TaskSnapshotDTO {
	if s == nil {
		return nil
	}
	return &dto.TaskSnapshotDTO{
		Title:          s.Title,
		Description:    s.Description,
		Priority:       s.Priority,
		AssigneeName:   s.AssigneeName,
		AssignedUserID: s.AssignedUserID,
		DueDate:        s.DueDate,
		Status:         string(s.Status),
	}
}

func taskToResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       t.Priority,
		AssigneeName:   t.AssigneeName,
		AssignedUserID: t.AssignedUserID,
		CreatorID:      t.CreatorID,
		DueDate:        t.DueDate,
		Status:         string(t.Status),
		StatusLabel:    domaintask.Label(t.Status),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
