package dto

// RegisterRequest represents a user registration request.
// Presence of every field is validated by the auth service so the
// caller gets one specific "Missing required fields" message.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the public user shape returned by login
type UserInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}
