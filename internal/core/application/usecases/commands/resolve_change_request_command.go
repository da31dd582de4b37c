package commands

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrResolveChangeRequestCommandIsNotConstructed = errors.New(
	"ResolveChangeRequestCommand must be created via NewResolveChangeRequestCommand constructor",
)

// ResolveChangeRequestCommand is the staff decision on a pending request.
type ResolveChangeRequestCommand struct {
	requestID kernel.UUID
	approve   bool
	notes     string

	guard guard.ConstructorGuard
}

func NewResolveChangeRequestCommand(requestID kernel.UUID, approve bool, notes string) (ResolveChangeRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return ResolveChangeRequestCommand{}, err
	}

	return ResolveChangeRequestCommand{
		requestID: requestID,
		approve:   approve,
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveChangeRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveChangeRequestCommandIsNotConstructed)
}

func (c ResolveChangeRequestCommand) RequestID() kernel.UUID { return c.requestID }
func (c ResolveChangeRequestCommand) Approve() bool { return c.approve }
func (c ResolveChangeRequestCommand) Notes() string { return c.notes }
