package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrLoginTaken = errors.New("login already taken")
	ErrMailTaken  = errors.New("mail already taken")
)
