package i

import (
	dmn "github.com/beka-birhanu/mazegen-api/domain"
)

// Authenticator handles account registration and sign-in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}

// Logger writes leveled log lines.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
