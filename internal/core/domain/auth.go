package domain

const (
	RoleAdmin         = "ADMIN"
	RoleBusinessOwner = "BUSINESS_OWNER"
)

// Credential storage keys. Absence of the token key means no session.
const (
	KeyToken    = "jwt_token"
	KeyRole     = "user_role"
	KeyUsername = "username"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the login payload. Role and username are cached from here,
// never extracted from the token, which stays opaque to the client.
type AuthResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthState is the derived identity of the current user. It is materialized
// from the credential store on every query and never cached.
type AuthState struct {
	Authenticated bool
	Username      string
	Role          string
}

// Anonymous is the state of a session with no credential.
var Anonymous = AuthState{}
