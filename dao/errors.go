package dao

import "errors"

// ErrInsufficientPoints is returned when a debit would take the balance below zero.
var ErrInsufficientPoints = errors.New("insufficient points")

// ErrAlreadyUsed is returned when a redeemed reward was already marked used.
var ErrAlreadyUsed = errors.New("redeemed reward already used")
