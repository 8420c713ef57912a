package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/task"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones
// ──────────────────────────────────────────────────────────────────────────────

// Cada par de estados, legal o no, contra la tabla completa.
func TestCanTransition_TablaCompleta(t *testing.T) {
	all := []entity.TaskStatus{
		entity.TaskBacklog, entity.TaskInProgress, entity.TaskReview, entity.TaskDone,
	}
	legal := map[[2]entity.TaskStatus]bool{
		{entity.TaskBacklog, entity.TaskInProgress}: true,
		{entity.TaskInProgress, entity.TaskReview}:  true,
		{entity.TaskReview, entity.TaskDone}:        true,
		{entity.TaskReview, entity.TaskInProgress}:  true,
		{entity.TaskDone, entity.TaskReview}:        true,
	}
	for _, from := range all {
		for _, to := range all {
			want := legal[[2]entity.TaskStatus{from, to}]
			assert.Equal(t, want, task.CanTransition(from, to),
				"transición %s → %s", from, to)
		}
	}
}

// Las auto-transiciones nunca son válidas.
func TestCanTransition_SinAutoTransiciones(t *testing.T) {
	for _, s := range []entity.TaskStatus{
		entity.TaskBacklog, entity.TaskInProgress, entity.TaskReview, entity.TaskDone,
	} {
		assert.False(t, task.CanTransition(s, s), "auto-transición en %s", s)
	}
}

// Regresar de revisión directamente al backlog no está permitido.
func TestCanTransition_ReviewABacklogInvalida(t *testing.T) {
	assert.False(t, task.CanTransition(entity.TaskReview, entity.TaskBacklog))
}

// Una tarea completada puede reabrirse solo hacia revisión.
func TestCanTransition_DoneReabreSoloAReview(t *testing.T) {
	assert.True(t, task.CanTransition(entity.TaskDone, entity.TaskReview))
	assert.False(t, task.CanTransition(entity.TaskDone, entity.TaskInProgress))
	assert.False(t, task.CanTransition(entity.TaskDone, entity.TaskBacklog))
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]entity.TaskStatus{entity.TaskDone, entity.TaskInProgress},
		task.NextStatuses(entity.TaskReview))
	assert.Empty(t, task.NextStatuses(entity.TaskStatus("desconocido")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados y etiquetas
// ──────────────────────────────────────────────────────────────────────────────

func TestValidStatus(t *testing.T) {
	assert.True(t, task.ValidStatus(entity.TaskBacklog))
	assert.True(t, task.ValidStatus(entity.TaskDone))
	assert.False(t, task.ValidStatus(entity.TaskStatus("archivada")))
	assert.False(t, task.ValidStatus(entity.TaskStatus("")))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Pendiente", task.Label(entity.TaskBacklog))
	assert.Equal(t, "En Progreso", task.Label(entity.TaskInProgress))
	assert.Equal(t, "En Revisión", task.Label(entity.TaskReview))
	assert.Equal(t, "Completada", task.Label(entity.TaskDone))
	// Estado desconocido: se devuelve el valor crudo.
	assert.Equal(t, "archivada", task.Label(entity.TaskStatus("archivada")))
}
