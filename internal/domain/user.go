package domain

import "context"

type ContextKey string

const UserContextKey ContextKey = "user"

const RoleAdmin = "admin"

// User is the caller identity resolved for a request. It is never loaded
// from storage: the ID comes from a verified token or the trusted identity header.
type User struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserFromContext returns the identity placed in ctx, if any.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(UserContextKey).(*User)
	if !ok || user == nil || user.ID == "" {
		return nil, false
	}
	return user, true
}

// ContextWithUser returns a copy of ctx carrying user.
func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
