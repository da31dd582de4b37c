package commands

import (
	"context"

	"bakery/internal/core/domain/model/customer"
)

type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle returns the new customer's id. Emails are unique.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	id, err := repo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	c, err := customer.NewCustomer(id, cmd.Email(), cmd.FirstName(), cmd.LastName())
	if err != nil {
		return 0, err
	}
	if err = c.ChangeDeliveryFee(cmd.DeliveryFee()); err != nil {
		return 0, err
	}
	if cmd.CustomerNumber() != "" {
		c.AssignCustomerNumber(cmd.CustomerNumber())
	}
	c.UpdateDefaultAddress(cmd.Address())

	if err = repo.Add(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
