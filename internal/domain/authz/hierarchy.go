// Package authz implementa el filtro de autorización por jerarquía de roles:
// cada rol ve y gestiona los recursos de los roles por debajo de él.
package authz

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// descendants roles "por debajo" de cada rol. Los roles hoja (ingeniería,
// ventas, soporte, usuario) no tienen subordinados.
var descendants = map[entity.Role][]entity.Role{
	entity.RoleAdmin: {
		entity.RoleProjectManager, entity.RoleTeamLead, entity.RoleGroupLead,
		entity.RoleEngineering, entity.RoleSales, entity.RoleSupport, entity.RoleUser,
	},
	entity.RoleProjectManager: {
		entity.RoleTeamLead, entity.RoleGroupLead,
		entity.RoleEngineering, entity.RoleSales, entity.RoleSupport, entity.RoleUser,
	},
	entity.RoleTeamLead: {
		entity.RoleGroupLead,
		entity.RoleEngineering, entity.RoleSales, entity.RoleSupport, entity.RoleUser,
	},
	entity.RoleGroupLead: {
		entity.RoleEngineering, entity.RoleSales, entity.RoleSupport, entity.RoleUser,
	},
	entity.RoleEngineering: {},
	entity.RoleSales:       {},
	entity.RoleSupport:     {},
	entity.RoleUser:        {},
}

// IsAdmin indica si el rol es admin (sin restricción de visibilidad).
func IsAdmin(r entity.Role) bool {
	return r == entity.RoleAdmin
}

// VisibleRoles devuelve el propio rol más todos sus descendientes. Para admin
// devuelve todos los roles: el llamador puede además saltarse el filtro por
// completo comprobando IsAdmin.
func VisibleRoles(r entity.Role) []entity.Role {
	subs, ok := descendants[r]
	if !ok {
		return []entity.Role{r}
	}
	roles := make([]entity.Role, 0, len(subs)+1)
	roles = append(roles, r)
	roles = append(roles, subs...)
	return roles
}

// CanManage indica si requester puede cambiar el estado de recursos cuyo
// dueño tiene el rol owner: admin siempre, el resto solo sobre descendientes.
func CanManage(requester, owner entity.Role) bool {
	if IsAdmin(requester) {
		return true
	}
	for _, sub := range descendants[requester] {
		if sub == owner {
			return true
		}
	}
	return false
}
