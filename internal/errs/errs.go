package errs

import "errors"

var (
	// ErrTicketNotFound signals that no ticket exists for the requested
	// system id. Handlers map it to 404.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrDuplicateTicketID signals a ticketId uniqueness violation on
	// create, batch create or update. Handlers map it to 400.
	ErrDuplicateTicketID = errors.New("ticket id already exists")
)
