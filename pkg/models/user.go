package models

// Role is the asserted session role. There is no credential validation; the
// role is taken at face value on login and lives only for the session.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the mock session identity.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user asserted the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginRequest struct {
	Name  string `json:"name" binding:"max=100"`
	Email string `json:"email" binding:"required,email"`
	Role  Role   `json:"role" binding:"required,oneof=user admin"`
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// PasswordsMatch reports whether the confirmation matches. The password is
// discarded either way; registration only establishes a session.
func (req *RegisterRequest) PasswordsMatch() bool {
	return req.Password == req.ConfirmPassword
}
