package user

// User is a read-only projection of what the users service returns. The
// client never owns this entity; it caches it in the session store after
// login and refreshes it only by explicit re-save. Password is write-only
// on the wire and is never present here.
type User struct {
	ID        int64
	Email     string
	Name      string
	Surname   string
	Phone     string
	Active    bool
	Role      Role
	CreatedAt string
	UpdatedAt string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
