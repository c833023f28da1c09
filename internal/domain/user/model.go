package user

import "github.com/google/uuid"

// User is the identity record. PasswordHash is only ever produced by
// the registration hashing path and copied verbatim everywhere else;
// plaintext passwords never reach this struct.
type User struct {
	ID           uuid.UUID
	Login        string
	Mail         string
	PasswordHash string
	FirstName    string
	LastName     string
}
