package models

// DefaultAvatar is the placeholder avatar marker served for every user.
const DefaultAvatar = "👤"

// User represents a registered account.
type User struct {
	ID        string `db:"id" json:"id"`
	Username  string `db:"username" json:"username"`
	Password  string `db:"password" json:"-"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// UserSummary is the directory projection of a user: no password, constant avatar.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Summary converts a user into its directory projection.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Avatar: DefaultAvatar}
}
