package session

import "context"

// Record is the durable session layout. The whole record is written and
// cleared as a unit; partial session state must never be observable.
// Password and anything token-adjacent beyond the bearer token itself are
// never persisted.
type Record struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Name     string `json:"displayName"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Token    string `json:"token,omitempty"`
	LoggedIn bool   `json:"loggedIn"`
}

// Backend persists the session record across process restarts.
type Backend interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec Record) error
	Clear(ctx context.Context) error
}
