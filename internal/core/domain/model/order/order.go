package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyOrder is returned when placing an order without lines.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrAlreadyExported is returned when an order is exported a second time.
	ErrAlreadyExported = errors.New("order is already exported")
)

// Order is the aggregate root for a customer's cart and, once placed, the
// submitted order.
//
// Order follows these invariants:
//   - at most one line per product
//   - every line has quantity >= 1
//   - lines change only while the order is Draft
//   - total and delivery fee are written only by RecomputeTotal
//   - exportedAt is set exactly when the status is Exported
type Order struct {
	id         int64
	customerID int64
	status     Status

	// items keeps insertion order for display and export.
	items []*Item

	total       kernel.Money
	deliveryFee kernel.Money

	deliveryType    DeliveryType
	desiredTime     *time.Time
	deliveryAddress kernel.Address

	createdAt        time.Time
	placedAt         *time.Time
	exportedAt       *time.Time
	externalExportID string

	isConstructed bool
}

// NewOrder creates an empty Draft order (a cart) for the customer. Delivery is the
// default delivery type.
func NewOrder(id, customerID int64, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Draft,
		total:         kernel.Zero(),
		deliveryFee:   kernel.Zero(),
		deliveryType:  Delivery,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State is the persisted form of an Order, used by RestoreOrder.
type State struct {
	ID               int64
	CustomerID       int64
	Status           Status
	Items            []*Item
	Total            kernel.Money
	DeliveryFee      kernel.Money
	DeliveryType     DeliveryType
	DesiredTime      *time.Time
	DeliveryAddress  kernel.Address
	CreatedAt        time.Time
	PlacedAt         *time.Time
	ExportedAt       *time.Time
	ExternalExportID string
}

// RestoreOrder rebuilds an order loaded from storage. Stored totals are kept as they are;
// a placed order's amounts must not drift when catalog prices or fees change later.
func RestoreOrder(s State) (*Order, error) {
	o, err := NewOrder(s.ID, s.CustomerID, s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		s.Status.Validate(),
		s.DeliveryType.Validate(),
		s.Total.Validate(),
		s.DeliveryFee.Validate(),
	); err != nil {
		return nil, err
	}
	if s.Status == Exported && s.ExportedAt == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("exported at", fmt.Errorf("order %d is exported", s.ID))
	}
	if s.Status != Draft && s.Status != Cancelled && s.PlacedAt == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("placed at", fmt.Errorf("order %d is %s", s.ID, s.Status))
	}

	seen := make(map[int64]struct{}, len(s.Items))
	for _, item := range s.Items {
		if item == nil {
			return nil, errs.NewValueIsRequiredError("item")
		}
		if _, dup := seen[item.productID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items are invalid",
				fmt.Errorf("product %d appears twice", item.productID),
			)
		}
		seen[item.productID] = struct{}{}
	}

	o.status = s.Status
	o.items = append([]*Item(nil), s.Items...)
	o.total = s.Total
	o.deliveryFee = s.DeliveryFee
	o.deliveryType = s.DeliveryType
	o.desiredTime = s.DesiredTime
	o.deliveryAddress = s.DeliveryAddress
	o.placedAt = s.PlacedAt
	o.exportedAt = s.ExportedAt
	o.externalExportID = s.ExternalExportID

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() int64 { return o.id }
func (o *Order) CustomerID() int64 { return o.customerID }
func (o *Order) Status() Status { return o.status }
func (o *Order) Total() kernel.Money { return o.total }
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }
func (o *Order) DesiredTime() *time.Time { return o.desiredTime }
func (o *Order) DeliveryAddress() kernel.Address { return o.deliveryAddress }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) PlacedAt() *time.Time { return o.placedAt }
func (o *Order) ExportedAt() *time.Time { return o.exportedAt }
func (o *Order) ExternalExportID() string { return o.externalExportID }

// GrandTotal is the line total plus the delivery fee.
func (o *Order) GrandTotal() kernel.Money {
	return o.total.Add(o.deliveryFee)
}

// Items returns a copy of the order lines in the order they were added.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// Item returns the line for productID, if any.
func (o *Order) Item(productID int64) (*Item, bool) {
	for _, item := range o.items {
		if item.productID == productID {
			return item, true
		}
	}
	return nil, false
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// ItemCount is the sum of all line quantities.
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.items {
		n += item.quantity
	}
	return n
}

// AddOrUpdateLine adds delta units of product. A new line snapshots the product's
// current price and requires the product to be available; an existing line only
// grows its quantity. The resulting quantity is checked against the product's
// max-per-order using policy.
func (o *Order) AddOrUpdateLine(product *catalog.Product, delta int, policy CapacityPolicy) error {
	if err := o.requireDraft("add items to"); err != nil {
		return err
	}
	if err := product.Validate(); err != nil {
		return err
	}
	if delta < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", delta, 1, product.MaxPerOrder())
	}

	if item, ok := o.Item(product.ID()); ok {
		quantity, err := policy.apply(product.ID(), item.quantity+delta, product.MaxPerOrder())
		if err != nil {
			return err
		}
		item.quantity = quantity
		return nil
	}

	if !product.IsAvailable() {
		return fmt.Errorf("%w: %s", ErrProductUnavailable, product.SKU())
	}
	quantity, err := policy.apply(product.ID(), delta, product.MaxPerOrder())
	if err != nil {
		return err
	}
	o.items = append(o.items, newItem(product, quantity))
	return nil
}

// SetLineQuantity overwrites the quantity of an existing line. A quantity of zero
// or less removes the line.
func (o *Order) SetLineQuantity(product *catalog.Product, quantity int, policy CapacityPolicy) error {
	if err := o.requireDraft("change items of"); err != nil {
		return err
	}
	if err := product.Validate(); err != nil {
		return err
	}

	item, ok := o.Item(product.ID())
	if !ok {
		return errs.NewObjectNotFoundError("order item", product.ID())
	}
	if quantity <= 0 {
		o.removeLine(product.ID())
		return nil
	}

	quantity, err := policy.apply(product.ID(), quantity, product.MaxPerOrder())
	if err != nil {
		return err
	}
	item.quantity = quantity
	return nil
}

// RemoveLine deletes the line for productID. Removing an absent line is a no-op.
func (o *Order) RemoveLine(productID int64) error {
	if err := o.requireDraft("remove items from"); err != nil {
		return err
	}
	o.removeLine(productID)
	return nil
}

func (o *Order) removeLine(productID int64) {
	for i, item := range o.items {
		if item.productID == productID {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return
		}
	}
}

// RecomputeTotal derives total and delivery fee from the lines and the owner's
// fee. Only drafts are recomputed; placed amounts are final.
func (o *Order) RecomputeTotal(owner *customer.Customer) error {
	if err := o.requireDraft("recompute"); err != nil {
		return err
	}
	if err := o.requireOwner(owner); err != nil {
		return err
	}

	total := kernel.Zero()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total

	if o.deliveryType == Delivery {
		o.deliveryFee = owner.DeliveryFee()
	} else {
		o.deliveryFee = kernel.Zero()
	}
	return nil
}

// SetDeliveryDetails records the checkout choices. A pickup order keeps no address.
func (o *Order) SetDeliveryDetails(deliveryType DeliveryType, desiredTime *time.Time, address kernel.Address) error {
	if err := o.requireDraft("change delivery details of"); err != nil {
		return err
	}
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	o.deliveryType = deliveryType
	o.desiredTime = desiredTime
	if deliveryType == Pickup {
		o.deliveryAddress = kernel.Address{}
	} else {
		o.deliveryAddress = address
	}
	return nil
}

// Place submits the draft and updates the status to Placed.
//
// This method enforces the following business rules:
//   - The order must be in Draft status
//   - The order must have at least one line
//   - Total and delivery fee are recomputed for owner, who must own the order
//
// Parameters:
//   - owner: The customer who owns the cart
//   - now: The placement time, in the shop's time zone
//
// Returns:
//   - nil on success
//   - ErrInvalidTransition if the order is not a draft
//   - ErrEmptyOrder if the cart has no lines
//
// Example:
//
//	if err := o.Place(owner, clock.Now()); err != nil {
//	    // Cart stays a draft
//	}
//
// After a successful call PlacedAt() is set and the amounts are final.
func (o *Order) Place(owner *customer.Customer, now time.Time) error {
	next, err := o.status.Place()
	if err != nil {
		return err
	}
	if o.IsEmpty() {
		return ErrEmptyOrder
	}
	if err = o.RecomputeTotal(owner); err != nil {
		return err
	}

	o.status = next
	o.placedAt = &now
	return nil
}

// Cancel withdraws the order and updates the status to Cancelled.
//
// This method enforces the following business rules:
//   - Draft and Placed orders can be cancelled
//   - Cancelling a cancelled order is a no-op
//   - An exported order can no longer be cancelled
//
// The edit window is not checked here; callers use IsCancellable first.
//
// Returns:
//   - nil on success
//   - ErrInvalidTransition if the order was exported
//
// Example:
//
//	if err := o.Cancel(); errors.Is(err, order.ErrInvalidTransition) {
//	    // Already handed over to the external system
//	}
func (o *Order) Cancel() error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// IsEditable reports whether the customer may still change the placed order.
// The edit window is evaluated in now's location, which must be the shop's time zone.
func (o *Order) IsEditable(now time.Time) bool {
	if o.status != Placed || o.placedAt == nil {
		return false
	}
	return now.Before(EditCutoff(*o.placedAt, now.Location()))
}

// IsCancellable follows the same window as IsEditable.
func (o *Order) IsCancellable(now time.Time) bool {
	return o.IsEditable(now)
}

// EditCutoff returns the end of the edit window in loc, or zero time for an
// order that has not been placed.
func (o *Order) EditCutoff(loc *time.Location) time.Time {
	if o.placedAt == nil {
		return time.Time{}
	}
	return EditCutoff(*o.placedAt, loc)
}

// MarkExported records that the order went out in the batch identified by
// reference and updates the status to Exported.
//
// This method enforces the following business rules:
//   - The order must be in Placed status
//   - An order is exported at most once
//   - The batch reference must not be blank
//
// Returns:
//   - nil on success
//   - ErrAlreadyExported if exportedAt is already set
//   - ErrInvalidTransition if the order is not placed
//   - a ValueIsRequired error for a blank reference
//
// Example:
//
//	if err := o.MarkExported(now, export.BatchName(now)); err != nil {
//	    // Leave the order for the next run
//	}
func (o *Order) MarkExported(now time.Time, reference string) error {
	if o.exportedAt != nil {
		return fmt.Errorf("%w: order %d", ErrAlreadyExported, o.id)
	}
	next, err := o.status.Export()
	if err != nil {
		return err
	}
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("export reference")
	}

	o.status = next
	o.exportedAt = &now
	o.externalExportID = reference
	return nil
}

func (o *Order) requireDraft(action string) error {
	if o.status != Draft {
		return newInvalidTransitionError(o.status, action)
	}
	return nil
}

func (o *Order) requireOwner(owner *customer.Customer) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.ID() != o.customerID {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer is invalid",
			fmt.Errorf("customer %d does not own order %d", owner.ID(), o.id),
		)
	}
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}
