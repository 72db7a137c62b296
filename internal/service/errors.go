package service

import "errors"

// Sentinel errors returned by the service layer. Controllers match them with
// errors.Is to choose a transport status; wrapped variants carry detail.
var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidInput = errors.New("invalid input")
)
