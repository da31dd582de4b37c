package commands

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrFileChangeRequestCommandIsNotConstructed = errors.New(
	"FileChangeRequestCommand must be created via NewFileChangeRequestCommand constructor",
)

// FileChangeRequestCommand asks staff to cancel or modify an order the customer
// can no longer change.
type FileChangeRequestCommand struct {
	customerID  int64
	orderID     int64
	requestType changerequest.Type
	reason      string

	guard guard.ConstructorGuard
}

func NewFileChangeRequestCommand(
	customerID, orderID int64,
	requestType changerequest.Type,
	reason string,
) (FileChangeRequestCommand, error) {
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(
		validateID("customer id", customerID),
		validateID("order id", orderID),
		requestType.Validate(),
		reasonErr,
	); err != nil {
		return FileChangeRequestCommand{}, err
	}

	return FileChangeRequestCommand{
		customerID:  customerID,
		orderID:     orderID,
		requestType: requestType,
		reason:      reason,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c FileChangeRequestCommand) Validate() error {
	return c.guard.Validate(ErrFileChangeRequestCommandIsNotConstructed)
}

func (c FileChangeRequestCommand) CustomerID() int64 { return c.customerID }
func (c FileChangeRequestCommand) OrderID() int64 { return c.orderID }
func (c FileChangeRequestCommand) Type() changerequest.Type { return c.requestType }
func (c FileChangeRequestCommand) Reason() string { return c.reason }
