package commands

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// ReorderResult lists what went into the cart. Skipped holds the SKUs of lines
// whose product is gone or no longer available.
type ReorderResult struct {
	CartID  int64
	Added   int
	Skipped []string
}

// ReorderCommandHandler refills the cart from a previous order at today's prices.
// Quantities are clamped to each product's max-per-order.
type ReorderCommandHandler struct {
	uowFactory CartUoWFactory
	clock      ports.Clock
}

func NewReorderCommandHandler(uowFactory CartUoWFactory, clock ports.Clock) ReorderCommandHandler {
	return ReorderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) (ReorderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReorderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReorderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return ReorderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	source, err := getOwnedOrder(ctx, orderRepo.Get, owner.ID(), cmd.OrderID())
	if err != nil {
		return ReorderResult{}, err
	}
	if source.Status() == order.Draft {
		return ReorderResult{}, errs.NewValueIsInvalidErrorWithCause(
			"order is invalid",
			fmt.Errorf("order %d is the open cart", source.ID()),
		)
	}

	cart, created, err := getOrCreateCart(ctx, orderRepo, owner.ID(), h.clock.Now())
	if err != nil {
		return ReorderResult{}, err
	}

	result := ReorderResult{CartID: cart.ID()}
	productRepo := uow.ProductRepository()
	for _, item := range source.Items() {
		product, getErr := productRepo.Get(ctx, item.ProductID())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			result.Skipped = append(result.Skipped, item.SKU())
			continue
		}
		if getErr != nil {
			return ReorderResult{}, getErr
		}
		if !product.IsAvailable() {
			result.Skipped = append(result.Skipped, item.SKU())
			continue
		}

		if err = cart.AddOrUpdateLine(product, item.Quantity(), order.ClampToCapacity); err != nil {
			return ReorderResult{}, err
		}
		result.Added++
	}

	if err = cart.RecomputeTotal(owner); err != nil {
		return ReorderResult{}, err
	}

	if err = saveOrder(ctx, orderRepo, cart, created); err != nil {
		return ReorderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReorderResult{}, err
	}

	return result, nil
}
