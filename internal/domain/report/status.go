// Package report contiene la máquina de estados del flujo de aprobación de
// informes. La fuente original no validaba estas transiciones; aquí se
// endurece con una tabla explícita análoga a la de tareas.
package report

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// validTransitions flujo lineal con bifurcación final:
// borrador → enviado → revisado → {aprobado, rechazado}.
var validTransitions = map[entity.ReportStatus][]entity.ReportStatus{
	entity.ReportDraft:     {entity.ReportSubmitted},
	entity.ReportSubmitted: {entity.ReportReviewed},
	entity.ReportReviewed:  {entity.ReportApproved, entity.ReportRejected},
	entity.ReportApproved:  {},
	entity.ReportRejected:  {},
}

var labels = map[entity.ReportStatus]string{
	entity.ReportDraft:     "Borrador",
	entity.ReportSubmitted: "Enviado",
	entity.ReportReviewed:  "Revisado",
	entity.ReportApproved:  "Aprobado",
	entity.ReportRejected:  "Rechazado",
}

// ValidStatus indica si el valor corresponde a un estado conocido.
func ValidStatus(s entity.ReportStatus) bool {
	_, ok := labels[s]
	return ok
}

// CanTransition indica si el paso from→to está en la tabla.
func CanTransition(from, to entity.ReportStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Label etiqueta visible del estado.
func Label(s entity.ReportStatus) string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}
