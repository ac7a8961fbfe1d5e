package entity

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User is the session owner as returned by login and session check.
type User struct {
	Identifier  string   `json:"identifier"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Role        UserRole `json:"role,omitempty"`
}

type SignupRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Birth        string `json:"birth,omitempty"` // YYYY-MM-DD
	SignupSource string `json:"signupSource,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PendingUser is an account awaiting admin approval.
type PendingUser struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	CreatedAt  string `json:"createdAt"`
	Approved   bool   `json:"approved"`
}
