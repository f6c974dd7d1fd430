package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrNilPerson        = errors.New("nil person")
	ErrSelfLink         = errors.New("self link")
	ErrAlreadyLinked    = errors.New("already linked")
	ErrLinkCycle        = errors.New("link would create a cycle")
	ErrSpouseTaken      = errors.New("spouse already set")
	ErrDeathBeforeBirth = errors.New("death date before birth date")
)
