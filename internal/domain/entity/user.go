package entity

import "time"

// Role rol de un usuario dentro de la organización. La jerarquía de
// visibilidad entre roles vive en el paquete authz.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProjectManager Role = "gerente_proyecto"
	RoleTeamLead       Role = "lider_equipo"
	RoleGroupLead      Role = "lider_grupo"
	RoleEngineering    Role = "ingenieria"
	RoleSales          Role = "ventas"
	RoleSupport        Role = "soporte"
	RoleUser           Role = "usuario"
)

// Estados de cuenta de usuario.
const (
	UserStatusActive    = "activo"
	UserStatusInactive  = "inactivo"
	UserStatusSuspended = "suspendido"
)

// User usuario interno del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Status       string
	BirthDate    *time.Time
	LastLoginAt  *time.Time
	Phone        string
	Address      string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre para mostrar (se desnormaliza en ventas, llamadas e historial).
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ValidRole indica si el valor corresponde a un rol conocido.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTeamLead, RoleGroupLead,
		RoleEngineering, RoleSales, RoleSupport, RoleUser:
		return true
	}
	return false
}
