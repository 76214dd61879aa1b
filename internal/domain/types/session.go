package types

import "time"

// Session is the authenticated state kept on this machine after login.
type Session struct {
	Token     string    `json:"token"`
	Staff     Staff     `json:"staff"`
	BaseURL   string    `json:"baseUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the login response body.
type LoginResult struct {
	Token string `json:"token"`
	Staff Staff  `json:"staff"`
}
