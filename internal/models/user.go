package models

// Roles accepted by the scheduling service and the seeded local accounts.
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// User is the authenticated dashboard user.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
}

// LocalAccount is a seeded login record in the local store. The hash never
// leaves the process.
type LocalAccount struct {
	User
	PasswordHash string `json:"password_hash"`
}

// Credentials is the login payload. The scheduling service requires all
// three fields.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin faculty student"`
}
