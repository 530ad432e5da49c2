package constants

import "fmt"

// Role pengguna (selaras dengan kolom users.role)
const (
	RoleAdmin  = "ADMIN"
	RoleLeader = "LEADER"
	RoleMember = "MEMBER"
)

// Template pesan error role
const (
	ErrOnlyLeadersCanAccess = "❌ Hanya leader atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorLeader(feature string) string {
	return fmt.Sprintf(ErrOnlyLeadersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleLeader,
		RoleMember,
	}

	LeaderAndAbove = []string{
		RoleLeader,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// ValidRole memeriksa apakah string role dikenal
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
