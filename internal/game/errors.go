package game

import "errors"

var (
	// ErrInsufficientFunds is returned when a double down or split needs more
	// cash than the participant holds. The hand is left unchanged.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrActionNotAllowed is returned when an action is applied to a hand that
	// cannot take it, e.g. splitting an unpaired hand or acting on a finished hand.
	ErrActionNotAllowed = errors.New("action not allowed")

	// ErrInvalidBet is returned when an initial bet is outside 1..cash.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrCannotSplit is returned by Hand.Split when the hand is not a splittable pair.
	ErrCannotSplit = errors.New("hand cannot be split")
)
