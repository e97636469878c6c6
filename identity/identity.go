// Package identity describes who is acting on a request. Authentication itself happens
// upstream; this package only carries the resolved user and role.
package identity

type Role string

const (
	RolePlayer     Role = "PLAYER"
	RoleTurfAdmin  Role = "TURF_ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

type Actor struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// Manages reports whether a may administer a resource owned by ownerID.
func (a Actor) Manages(ownerID string) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a.Role == RoleTurfAdmin && a.UserID != "" && a.UserID == ownerID
}
