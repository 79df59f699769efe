package models

import "time"

// Session is a cookie-mode entry: the username is the cookie value, LastSeen
// is refreshed on every authenticated request.
type Session struct {
	Username string    `json:"username"`
	LastSeen time.Time `json:"last_seen"`
}

// Token is a bearer-token-mode entry. The token value is an opaque random
// identifier looked up server-side; it carries no meaning of its own.
type Token struct {
	Value     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
