package models

// Role is the access level granted to an authenticated principal.
type Role string

// Roles.
const (
	RoleAdvisor Role = "advisor"
	RoleViewer  Role = "viewer"
)

// User represents an authenticated principal (an advisor or a read-only
// viewer). Users are deliberately decoupled from the clients they manage:
// a client record carries no credentials.
type User struct {
	Base
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"not null" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
