package tasks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/tasks"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *fakeTaskRepo) Create(task *entity.Task) error {
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTaskRepo) List(limit, offset int) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.IsDeleted {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(task *entity.Task) error {
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) snapshot() map[string]*entity.Task {
	s := make(map[string]*entity.Task, len(r.tasks))
	for k, v := range r.tasks {
		cp := *v
		s[k] = &cp
	}
	return s
}

type fakeHistoryRepo struct {
	entries []*entity.TaskHistory
}

func (r *fakeHistoryRepo) Create(entry *entity.TaskHistory) error {
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListByTask(taskID string) ([]*entity.TaskHistory, error) {
	// Más recientes primero: orden inverso de inserción.
	var out []*entity.TaskHistory
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].TaskID == taskID {
			cp := *r.entries[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error            { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error                  { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

// fakeTxRunner emula la atomicidad de la transacción: guarda el estado de
// ambos repos antes del callback y lo restaura si el callback falla.
type fakeTxRunner struct {
	taskRepo    *fakeTaskRepo
	historyRepo *fakeHistoryRepo
}

func (r *fakeTxRunner) RunTaskAudit(_ context.Context, fn func(
	taskRepo repository.TaskRepository,
	historyRepo repository.TaskHistoryRepository,
) error) error {
	tasksBefore := r.taskRepo.snapshot()
	entriesBefore := len(r.historyRepo.entries)
	if err := fn(r.taskRepo, r.historyRepo); err != nil {
		r.taskRepo.tasks = tasksBefore
		r.historyRepo.entries = r.historyRepo.entries[:entriesBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	creatorID  = "creator-1"
	assigneeID = "assignee-1"
	otherID    = "other-1"
)

type fixture struct {
	uc          *tasks.TaskUseCase
	taskRepo    *fakeTaskRepo
	historyRepo *fakeHistoryRepo
}

func newFixture() *fixture {
	taskRepo := newFakeTaskRepo()
	historyRepo := &fakeHistoryRepo{}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		creatorID:  {ID: creatorID, FirstName: "Carla", LastName: "Creadora", Role: entity.RoleTeamLead},
		assigneeID: {ID: assigneeID, FirstName: "Andrés", LastName: "Asignado", Role: entity.RoleEngineering},
		otherID:    {ID: otherID, FirstName: "Otro", LastName: "Usuario", Role: entity.RoleSales},
	}}
	runner := &fakeTxRunner{taskRepo: taskRepo, historyRepo: historyRepo}
	return &fixture{
		uc:          tasks.NewTaskUseCase(runner, taskRepo, historyRepo, userRepo),
		taskRepo:    taskRepo,
		historyRepo: historyRepo,
	}
}

func (f *fixture) createTask(t *testing.T) *dto.TaskResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), dto.CreateTaskRequest{
		Title:          "Configurar entorno",
		Description:    "Preparar el entorno de pruebas",
		Priority:       entity.TaskPriorityHigh,
		AssignedUserID: assigneeID,
		CreatorID:      creatorID,
		DueDate:        "2026-09-30",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EstadoInicialEHistorial(t *testing.T) {
	f := newFixture()
	out := f.createTask(t)

	assert.Equal(t, "backlog", out.Status)
	assert.Equal(t, "Pendiente", out.StatusLabel)
	assert.Equal(t, "Andrés Asignado", out.AssigneeName)

	history, err := f.uc.History(context.Background(), out.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Nueva tarea creada", history[0].Action)
	assert.Nil(t, history[0].PreviousValue, "la creación no tiene valor previo")
	require.NotNil(t, history[0].NewValue)
	assert.Equal(t, "backlog", history[0].NewValue.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambios de estado
// ──────────────────────────────────────────────────────────────────────────────

// Solo el asignado puede mover la tarea; nadie más, ni siquiera el creador.
func TestUpdate_EstadoSoloAsignado(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)

	for _, actor := range []string{creatorID, otherID} {
		_, err := f.uc.Update(context.Background(), task.ID, actor,
			dto.UpdateTaskRequest{Status: strPtr("inProgress")})
		assert.ErrorIs(t, err, domain.ErrForbidden, "actor %s", actor)
	}

	// Sin historial nuevo y con el estado intacto.
	history, _ := f.uc.History(context.Background(), task.ID)
	assert.Len(t, history, 1, "el intento prohibido no deja historial")
	stored, _ := f.taskRepo.GetByID(task.ID)
	assert.Equal(t, entity.TaskBacklog, stored.Status)
}

func TestUpdate_TransicionInvalida(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)

	// backlog → done se salta el flujo.
	_, err := f.uc.Update(context.Background(), task.ID, assigneeID,
		dto.UpdateTaskRequest{Status: strPtr("done")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	var transErr *domain.InvalidTransitionError
	require.True(t, errors.As(err, &transErr))
	assert.Equal(t, "Pendiente", transErr.From)
	assert.Equal(t, "Completada", transErr.To)

	stored, _ := f.taskRepo.GetByID(task.ID)
	assert.Equal(t, entity.TaskBacklog, stored.Status, "el estado no cambia")
}

func TestUpdate_TransicionValidaConHistorial(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)

	out, err := f.uc.Update(context.Background(), task.ID, assigneeID,
		dto.UpdateTaskRequest{Status: strPtr("inProgress")})
	require.NoError(t, err)
	assert.Equal(t, "inProgress", out.Status)

	history, err := f.uc.History(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, history, 2, "creación + cambio de estado")

	// La más reciente primero, con las etiquetas visibles en el texto.
	latest := history[0]
	assert.Contains(t, latest.Action, "Pendiente")
	assert.Contains(t, latest.Action, "En Progreso")
	require.NotNil(t, latest.PreviousValue)
	require.NotNil(t, latest.NewValue)
	assert.Equal(t, "backlog", latest.PreviousValue.Status)
	assert.Equal(t, "inProgress", latest.NewValue.Status)
}

// Un estado desconocido se rechaza antes de mirar permisos o transiciones.
func TestUpdate_EstadoDesconocido(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)

	_, err := f.uc.Update(context.Background(), task.ID, assigneeID,
		dto.UpdateTaskRequest{Status: strPtr("archivada")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición de campos
// ──────────────────────────────────────────────────────────────────────────────

// Los campos básicos solo los edita el creador; el asignado no.
func TestUpdate_CamposSoloCreador(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)

	_, err := f.uc.Update(context.Background(), task.ID, assigneeID,
		dto.UpdateTaskRequest{Title: strPtr("Otro título")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.uc.Update(context.Background(), task.ID, creatorID,
		dto.UpdateTaskRequest{Title: strPtr("Título corregido"), Priority: strPtr("baja")})
	require.NoError(t, err)
	assert.Equal(t, "Título corregido", out.Title)
	assert.Equal(t, "baja", out.Priority)

	history, _ := f.uc.History(context.Background(), task.ID)
	require.Len(t, history, 2)
	assert.Equal(t, "Información de la tarea actualizada", history[0].Action)
}

// Una petición sin cambios devuelve la tarea tal cual, sin historial.
func TestUpdate_SinCambios(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)

	out, err := f.uc.Update(context.Background(), task.ID, creatorID, dto.UpdateTaskRequest{})
	require.NoError(t, err)
	assert.Equal(t, task.Title, out.Title)

	history, _ := f.uc.History(context.Background(), task.ID)
	assert.Len(t, history, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado lógico
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_SoloCreadorYSoftDelete(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)

	// El asignado no puede borrar.
	err := f.uc.Delete(context.Background(), task.ID, assigneeID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El creador sí: la tarea desaparece del listado pero no de la tabla.
	require.NoError(t, f.uc.Delete(context.Background(), task.ID, creatorID))

	list, err := f.uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list, "la tarea eliminada no aparece en el listado")

	stored, _ := f.taskRepo.GetByID(task.ID)
	require.NotNil(t, stored, "la fila sigue existiendo")
	assert.True(t, stored.IsDeleted)

	// El historial sobrevive al borrado y registra la eliminación.
	history, err := f.uc.History(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Tarea eliminada", history[0].Action)
	require.NotNil(t, history[0].PreviousValue)
	assert.Nil(t, history[0].NewValue, "el borrado no tiene valor nuevo")
}

// Operar sobre una tarea ya eliminada se comporta como si no existiera.
func TestUpdate_TareaEliminada(t *testing.T) {
	f := newFixture()
	task := f.createTask(t)
	require.NoError(t, f.uc.Delete(context.Background(), task.ID, creatorID))

	_, err := f.uc.Update(context.Background(), task.ID, assigneeID,
		dto.UpdateTaskRequest{Status: strPtr("inProgress")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.uc.Delete(context.Background(), task.ID, creatorID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
