package domain

import "errors"

var (
	// ErrTicketAlreadyClosed rejects closing a ticket whose EndTime is set.
	ErrTicketAlreadyClosed = errors.New("ticket already closed")

	// ErrInvalidTicketState rejects pause/resume on a closed ticket.
	ErrInvalidTicketState = errors.New("invalid ticket state")

	ErrCompanyNotFound = errors.New("company not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
)
