package domain

// User is the credential pair. The persisted copy doubles as the session
// marker: its presence alone means "logged in".
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
