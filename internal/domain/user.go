package domain

// User is a registered account. The password is stored as-is; this
// application keeps all state in local storage and makes no security
// guarantees about it.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the password-free view of a user, used as the
// current-session identity.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Auth returns the password-free view of the user.
func (u User) Auth() AuthUser {
	return AuthUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Ref returns the user as a quiz creator reference.
func (u AuthUser) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}
