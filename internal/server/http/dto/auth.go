package dto

// RegisterRequest describes POST /api/auth payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes PUT /api/auth payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest describes PUT /api/auth/:id payload.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RoleResponse is a role grant; ObjectID is set for scoped roles.
type RoleResponse struct {
	Role     string `json:"role"`
	ObjectID int64  `json:"objectId,omitempty"`
}

// UserResponse is the public view of a user. It never carries the password.
type UserResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Roles []RoleResponse `json:"roles"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// MessageResponse carries a human readable message, used for errors too.
type MessageResponse struct {
	Message string `json:"message"`
}
