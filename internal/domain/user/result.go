package user

import "passvault/internal/domain/token"

// Login and registration report their outcome as a value, never as an
// error: the error return on the service methods is reserved for
// backing-store failures.

type LoginOutcome int

const (
	LoginOK LoginOutcome = iota
	LoginWrongLogin
	LoginWrongPassword
	LoginUnknown
)

type LoginResult struct {
	Outcome LoginOutcome
	Tokens  token.Pair
}

type RegistrationOutcome int

const (
	RegistrationOK RegistrationOutcome = iota
	RegistrationLoginTaken
	RegistrationMailTaken
	RegistrationWrongPassword
	RegistrationUnknown
)

type RegistrationResult struct {
	Outcome RegistrationOutcome
	Tokens  token.Pair
}

// classification is the advisory pre-insert uniqueness check result.
// Mail is checked before login, so when both collide the mail
// conflict is the one reported.
type classification int

const (
	notFound classification = iota
	foundByLogin
	foundByMail
)
