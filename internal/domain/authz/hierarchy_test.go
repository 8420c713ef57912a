package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/authz"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad por jerarquía
// ──────────────────────────────────────────────────────────────────────────────

// Un líder de equipo ve su propio rol y los de abajo, nunca los de arriba.
func TestVisibleRoles_LiderEquipo(t *testing.T) {
	visible := authz.VisibleRoles(entity.RoleTeamLead)

	assert.Contains(t, visible, entity.RoleTeamLead, "siempre se ve a sí mismo")
	assert.Contains(t, visible, entity.RoleGroupLead)
	assert.Contains(t, visible, entity.RoleEngineering)
	assert.Contains(t, visible, entity.RoleSales)
	assert.Contains(t, visible, entity.RoleSupport)
	assert.Contains(t, visible, entity.RoleUser)

	assert.NotContains(t, visible, entity.RoleProjectManager, "no ve hacia arriba")
	assert.NotContains(t, visible, entity.RoleAdmin)
}

// Admin ve todos los roles.
func TestVisibleRoles_Admin(t *testing.T) {
	visible := authz.VisibleRoles(entity.RoleAdmin)
	assert.Len(t, visible, 8)
}

// Un rol hoja solo se ve a sí mismo.
func TestVisibleRoles_RolHoja(t *testing.T) {
	visible := authz.VisibleRoles(entity.RoleEngineering)
	assert.Equal(t, []entity.Role{entity.RoleEngineering}, visible)
}

// Un rol desconocido se reduce a sí mismo, sin descendientes.
func TestVisibleRoles_RolDesconocido(t *testing.T) {
	visible := authz.VisibleRoles(entity.Role("externo"))
	assert.Equal(t, []entity.Role{entity.Role("externo")}, visible)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestión de recursos ajenos
// ──────────────────────────────────────────────────────────────────────────────

func TestCanManage(t *testing.T) {
	// Admin gestiona cualquier cosa, incluidos otros admins.
	assert.True(t, authz.CanManage(entity.RoleAdmin, entity.RoleAdmin))
	assert.True(t, authz.CanManage(entity.RoleAdmin, entity.RoleUser))

	// Gerente de proyecto gestiona a líderes y hojas, no a otros gerentes.
	assert.True(t, authz.CanManage(entity.RoleProjectManager, entity.RoleTeamLead))
	assert.True(t, authz.CanManage(entity.RoleProjectManager, entity.RoleSales))
	assert.False(t, authz.CanManage(entity.RoleProjectManager, entity.RoleProjectManager))
	assert.False(t, authz.CanManage(entity.RoleProjectManager, entity.RoleAdmin))

	// Una hoja no gestiona a nadie, ni siquiera a su propio rol.
	assert.False(t, authz.CanManage(entity.RoleSupport, entity.RoleSupport))
	assert.False(t, authz.CanManage(entity.RoleUser, entity.RoleUser))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, authz.IsAdmin(entity.RoleAdmin))
	assert.False(t, authz.IsAdmin(entity.RoleProjectManager))
}
