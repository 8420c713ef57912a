// Package task contiene la máquina de estados del ciclo de vida de una tarea
// (servicio de dominio, sin dependencias de infraestructura).
package task

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// validTransitions tabla de transiciones permitidas. Grafo dirigido, sin
// auto-transiciones: todo cambio de estado fuera de esta tabla se rechaza.
var validTransitions = map[entity.TaskStatus][]entity.TaskStatus{
	entity.TaskBacklog:    {entity.TaskInProgress},
	entity.TaskInProgress: {entity.TaskReview},
	entity.TaskReview:     {entity.TaskDone, entity.TaskInProgress},
	entity.TaskDone:       {entity.TaskReview},
}

// labels etiquetas visibles de cada estado, usadas en el texto de las
// entradas de historial y en los mensajes de error.
var labels = map[entity.TaskStatus]string{
	entity.TaskBacklog:    "Pendiente",
	entity.TaskInProgress: "En Progreso",
	entity.TaskReview:     "En Revisión",
	entity.TaskDone:       "Completada",
}

// ValidStatus indica si el valor corresponde a un estado conocido.
func ValidStatus(s entity.TaskStatus) bool {
	_, ok := labels[s]
	return ok
}

// CanTransition indica si el paso from→to está en la tabla.
func CanTransition(from, to entity.TaskStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses devuelve los estados alcanzables desde from.
func NextStatuses(from entity.TaskStatus) []entity.TaskStatus {
	return validTransitions[from]
}

// Label etiqueta visible del estado; si el estado no es conocido devuelve el
// valor crudo para no perder información en logs ni historial.
func Label(s entity.TaskStatus) string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}
