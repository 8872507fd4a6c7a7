package employee

import "errors"

var (
	ErrEmployeeNotFound           = errors.New("employee not found")
	ErrRegistrationNumberExists   = errors.New("registration number already registered")
	ErrInsufficientHourBank       = errors.New("insufficient hour-bank balance")
	ErrEmployeeHasNoLinkedAccount = errors.New("employee has no linked account")
)
