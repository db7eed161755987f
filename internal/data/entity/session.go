package entity

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the backend's view of "who am I". The authoritative copy
// lives in the backend's cookie store; this is only the probed snapshot.
type Session struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
