// Package changerequest records customer requests to cancel or modify an order
// after its edit window has closed. Staff resolve them; resolution does not
// touch the order itself.
package changerequest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

var (
	ErrChangeRequestIsNotConstructed = errors.New("ChangeRequest must be created via File constructor")

	// ErrInvalidState is returned when filing against an order that is neither placed nor exported.
	ErrInvalidState = errors.New("change requests can only be filed for placed or exported orders")

	// ErrDuplicatePending is returned when the order already has an open request.
	ErrDuplicatePending = errors.New("order already has a pending change request")
)

type Type int

const (
	UnknownType Type = iota
	Cancel
	Modify
)

func (t Type) String() string {
	switch t {
	case Cancel:
		return "CANCEL"
	case Modify:
		return "MODIFY"
	default:
		return "UNKNOWN"
	}
}

func (t Type) Validate() error {
	if t != Cancel && t != Modify {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid request type", t))
	}
	return nil
}

func ParseType(s string) (Type, error) {
	switch s {
	case "CANCEL":
		return Cancel, nil
	case "MODIFY":
		return Modify, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a valid request type", s))
	}
}

type Status int

const (
	UnknownStatus Status = iota
	Pending
	Approved
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Approved:
		return "APPROVED"
	case Rejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case "PENDING":
		return Pending, nil
	case "APPROVED":
		return Approved, nil
	case "REJECTED":
		return Rejected, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid request status", s))
	}
}

// ChangeRequest is a customer's request against a single order.
type ChangeRequest struct {
	id         kernel.UUID
	orderID    int64
	customerID int64
	typ        Type
	status     Status
	reason     string
	staffNotes string
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// File opens a pending request for o. The caller checks that no other request
// for the order is pending.
func File(id kernel.UUID, o *order.Order, typ Type, reason string, now time.Time) (*ChangeRequest, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if s := o.Status(); s != order.Placed && s != order.Exported {
		return nil, fmt.Errorf("%w: order %d is %s", ErrInvalidState, o.ID(), s)
	}

	cr := &ChangeRequest{
		orderID:       o.ID(),
		customerID:    o.CustomerID(),
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if err := errors.Join(
		cr.setID(id),
		cr.setType(typ),
		cr.setReason(reason),
	); err != nil {
		return nil, err
	}
	return cr, nil
}

// Restore rebuilds a persisted change request.
func Restore(
	id kernel.UUID,
	orderID, customerID int64,
	typ Type,
	status Status,
	reason, staffNotes string,
	createdAt, updatedAt time.Time,
) (*ChangeRequest, error) {
	cr := &ChangeRequest{
		orderID:       orderID,
		customerID:    customerID,
		staffNotes:    staffNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if err := errors.Join(
		cr.setID(id),
		cr.setType(typ),
		cr.setReason(reason),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	cr.status = status
	return cr, nil
}

func (c *ChangeRequest) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrChangeRequestIsNotConstructed
	}
	return nil
}

func (c *ChangeRequest) ID() kernel.UUID { return c.id }
func (c *ChangeRequest) OrderID() int64 { return c.orderID }
func (c *ChangeRequest) CustomerID() int64 { return c.customerID }
func (c *ChangeRequest) Type() Type { return c.typ }
func (c *ChangeRequest) Status() Status { return c.status }
func (c *ChangeRequest) Reason() string { return c.reason }
func (c *ChangeRequest) StaffNotes() string { return c.staffNotes }
func (c *ChangeRequest) CreatedAt() time.Time { return c.createdAt }
func (c *ChangeRequest) UpdatedAt() time.Time { return c.updatedAt }

// Resolve approves or rejects a pending request and stores the staff notes.
func (c *ChangeRequest) Resolve(approve bool, notes string, now time.Time) error {
	if c.status != Pending {
		return fmt.Errorf("%w: change request %s is %s", order.ErrInvalidTransition, c.id, c.status)
	}
	if approve {
		c.status = Approved
	} else {
		c.status = Rejected
	}
	c.staffNotes = strings.TrimSpace(notes)
	c.updatedAt = now
	return nil
}

func (c *ChangeRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *ChangeRequest) setType(typ Type) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	c.typ = typ
	return nil
}

func (c *ChangeRequest) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
