// Package auth is responsible for credentials and sessions: user registration,
// login, JWT issuing and verification, and the middleware that resolves the
// caller's identity for protected routes.
package auth

const (
	// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
	pgUniqueViolation = "23505"

	// Login never says whether the email or the password was wrong.
	msgInvalidCredentials = "Invalid credentials"
	msgEmailTaken         = "Email already registered"
	msgUnauthorized       = "Unauthorized"
)
