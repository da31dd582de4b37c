package http

import (
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AddToCart            commands.AddToCartCommandHandler
	UpdateCartItem       commands.UpdateCartItemCommandHandler
	RemoveCartItem       commands.RemoveCartItemCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	Reorder              commands.ReorderCommandHandler
	FileChangeRequest    commands.FileChangeRequestCommandHandler
	ResolveChangeRequest commands.ResolveChangeRequestCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	UpdateProduct        commands.UpdateProductCommandHandler
	DeleteProduct        commands.DeleteProductCommandHandler
	CreateCustomer       commands.CreateCustomerCommandHandler
	UpdateDefaultAddress commands.UpdateDefaultAddressCommandHandler
	RunExport            commands.RunExportCommandHandler

	ListProducts              queries.ListProductsQueryHandler
	GetCart                   queries.GetCartQueryHandler
	GetOrder                  queries.GetOrderQueryHandler
	ListCustomerOrders        queries.ListCustomerOrdersQueryHandler
	GetCosts                  queries.GetCostsQueryHandler
	ListExportLogs            queries.ListExportLogsQueryHandler
	ListPendingChangeRequests queries.ListPendingChangeRequestsQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	h     Handlers
	clock ports.Clock
}

func NewServer(h Handlers, clock ports.Clock) *Server {
	return &Server{h: h, clock: clock}
}

var _ ServerInterface = (*Server)(nil)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	return s.listProducts(ctx, true)
}

// ListAllProducts handles GET /api/v1/admin/products.
func (s *Server) ListAllProducts(ctx echo.Context) error {
	return s.listProducts(ctx, false)
}

func (s *Server) listProducts(ctx echo.Context, onlyAvailable bool) error {
	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery(onlyAvailable))
	if err != nil {
		return err
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:          p.ID,
			SKU:         p.SKU,
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.PriceCents,
			Available:   p.Available,
			MaxPerOrder: p.MaxPerOrder,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context, params CustomerParams) error {
	return s.respondCart(ctx, params.CustomerID)
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(ctx echo.Context, params CustomerParams) error {
	var body CartItemAdd
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddToCartCommand(params.CustomerID, body.ProductID, body.Quantity)
	if err != nil {
		return err
	}
	if _, err = s.h.AddToCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondCart(ctx, params.CustomerID)
}

// UpdateCartItem handles PUT /api/v1/cart/items/{productId}.
func (s *Server) UpdateCartItem(ctx echo.Context, productID int64, params CustomerParams) error {
	var body CartItemUpdate
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemCommand(params.CustomerID, productID, body.Quantity)
	if err != nil {
		return err
	}
	if err = s.h.UpdateCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondCart(ctx, params.CustomerID)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{productId}.
func (s *Server) RemoveCartItem(ctx echo.Context, productID int64, params CustomerParams) error {
	cmd, err := commands.NewRemoveCartItemCommand(params.CustomerID, productID)
	if err != nil {
		return err
	}
	if err = s.h.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondCart(ctx, params.CustomerID)
}

func (s *Server) respondCart(ctx echo.Context, customerID int64) error {
	query, err := queries.NewGetCartQuery(customerID)
	if err != nil {
		return err
	}
	cart, err := s.h.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Cart{
		OrderID:          cart.OrderID,
		Items:            toLines(cart.Items),
		TotalCents:       cart.TotalCents,
		DeliveryFeeCents: cart.DeliveryFeeCents,
		GrandTotalCents:  cart.GrandTotalCents,
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params CustomerParams) error {
	query, err := queries.NewListCustomerOrdersQuery(params.CustomerID)
	if err != nil {
		return err
	}
	orders, err := s.h.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:              o.ID,
			Status:          o.Status,
			DeliveryType:    o.DeliveryType,
			PlacedAt:        o.PlacedAt,
			ItemCount:       o.ItemCount,
			GrandTotalCents: o.GrandTotalCents,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders. The cart becomes the order.
func (s *Server) PlaceOrder(ctx echo.Context, params CustomerParams) error {
	var body PlaceOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	deliveryType, err := order.ParseDeliveryType(body.DeliveryType)
	if err != nil {
		return err
	}
	cmd, err := commands.NewPlaceOrderCommand(params.CustomerID, deliveryType, body.DesiredTime, fromAddress(body.Address))
	if err != nil {
		return err
	}
	orderID, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusCreated, params.CustomerID, orderID)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID int64, params CustomerParams) error {
	return s.respondOrder(ctx, http.StatusOK, params.CustomerID, orderID)
}

func (s *Server) respondOrder(ctx echo.Context, status int, customerID, orderID int64) error {
	query, err := queries.NewGetOrderQuery(customerID, orderID)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := Order{
		ID:               o.ID,
		Status:           o.Status,
		DeliveryType:     o.DeliveryType,
		DesiredTime:      o.DesiredTime,
		Items:            toLines(o.Items),
		TotalCents:       o.TotalCents,
		DeliveryFeeCents: o.DeliveryFeeCents,
		GrandTotalCents:  o.GrandTotalCents,
		CreatedAt:        o.CreatedAt,
		PlacedAt:         o.PlacedAt,
		ExportedAt:       o.ExportedAt,
		EditableUntil:    o.EditableUntil,
		Editable:         o.Editable,
	}
	if o.DeliveryAddress.Street != "" {
		response.DeliveryAddress = &Address{
			Street:     o.DeliveryAddress.Street,
			City:       o.DeliveryAddress.City,
			PostalCode: o.DeliveryAddress.PostalCode,
			Phone:      o.DeliveryAddress.Phone,
			Notes:      o.DeliveryAddress.Notes,
		}
	}
	return ctx.JSON(status, response)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID int64, params CustomerParams) error {
	cmd, err := commands.NewCancelOrderCommand(params.CustomerID, orderID)
	if err != nil {
		return err
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Reorder handles POST /api/v1/orders/{orderId}/reorder.
func (s *Server) Reorder(ctx echo.Context, orderID int64, params CustomerParams) error {
	cmd, err := commands.NewReorderCommand(params.CustomerID, orderID)
	if err != nil {
		return err
	}
	result, err := s.h.Reorder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	skipped := result.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return ctx.JSON(http.StatusOK, ReorderResult{CartID: result.CartID, Added: result.Added, Skipped: skipped})
}

// FileChangeRequest handles POST /api/v1/orders/{orderId}/change-requests.
func (s *Server) FileChangeRequest(ctx echo.Context, orderID int64, params CustomerParams) error {
	var body NewChangeRequest
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	requestType, err := changerequest.ParseType(body.Type)
	if err != nil {
		return err
	}
	cmd, err := commands.NewFileChangeRequestCommand(params.CustomerID, orderID, requestType, body.Reason)
	if err != nil {
		return err
	}
	id, err := s.h.FileChangeRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, CreatedUUID{ID: id.String()})
}

// GetCosts handles GET /api/v1/costs.
func (s *Server) GetCosts(ctx echo.Context, params CustomerParams) error {
	query, err := queries.NewGetCostsQuery(params.CustomerID, s.clock.Now())
	if err != nil {
		return err
	}
	costs, err := s.h.GetCosts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Costs{
		LastWeekCents:   costs.LastWeekCents,
		LastWeekOrders:  costs.LastWeekOrders,
		LastMonthCents:  costs.LastMonthCents,
		LastMonthOrders: costs.LastMonthOrders,
	})
}

// UpdateDefaultAddress handles PUT /api/v1/profile/address.
func (s *Server) UpdateDefaultAddress(ctx echo.Context, params CustomerParams) error {
	var body Address
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDefaultAddressCommand(params.CustomerID, fromAddress(&body))
	if err != nil {
		return err
	}
	if err = s.h.UpdateDefaultAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/admin/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(body.SKU, body.Name, body.Description, body.PriceCents, body.MaxPerOrder)
	if err != nil {
		return err
	}
	id, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id})
}

// UpdateProduct handles PUT /api/v1/admin/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productID int64) error {
	var body ProductUpdate
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		body.Name,
		body.Description,
		body.PriceCents,
		body.Available,
		body.MaxPerOrder,
	)
	if err != nil {
		return err
	}
	if err = s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/admin/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productID int64) error {
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return err
	}
	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/admin/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(
		body.Email,
		body.FirstName,
		body.LastName,
		body.CustomerNumber,
		body.DeliveryFeeCents,
		fromAddress(body.Address),
	)
	if err != nil {
		return err
	}
	id, err := s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id})
}

// ListPendingChangeRequests handles GET /api/v1/admin/change-requests.
func (s *Server) ListPendingChangeRequests(ctx echo.Context) error {
	requests, err := s.h.ListPendingChangeRequests.Handle(
		ctx.Request().Context(),
		queries.NewListPendingChangeRequestsQuery(),
	)
	if err != nil {
		return err
	}

	response := make([]ChangeRequest, len(requests))
	for i, r := range requests {
		response[i] = ChangeRequest{
			ID:            r.ID,
			OrderID:       r.OrderID,
			OrderStatus:   r.OrderStatus,
			CustomerID:    r.CustomerID,
			CustomerEmail: r.CustomerEmail,
			Type:          r.Type,
			Reason:        r.Reason,
			CreatedAt:     r.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ResolveChangeRequest handles POST /api/v1/admin/change-requests/{requestId}/resolve.
func (s *Server) ResolveChangeRequest(ctx echo.Context, requestID string) error {
	var body Resolution
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	id, err := kernel.UUIDFromString(requestID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewResolveChangeRequestCommand(id, body.Approve, body.Notes)
	if err != nil {
		return err
	}
	if err = s.h.ResolveChangeRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RunExport handles POST /api/v1/admin/exports.
func (s *Server) RunExport(ctx echo.Context) error {
	var body ExportRun
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
		}
	}

	result, err := s.h.RunExport.Handle(ctx.Request().Context(), commands.NewRunExportCommand(body.Since, body.DryRun))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ExportResult{Count: result.Count, Batch: result.Batch, DryRun: result.DryRun})
}

// ListExportLogs handles GET /api/v1/admin/exports/logs.
func (s *Server) ListExportLogs(ctx echo.Context, params ListExportLogsParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	logs, err := s.h.ListExportLogs.Handle(ctx.Request().Context(), queries.NewListExportLogsQuery(limit))
	if err != nil {
		return err
	}

	response := make([]ExportLog, len(logs))
	for i, l := range logs {
		response[i] = ExportLog{
			ID:             l.ID,
			RunAt:          l.RunAt,
			OrdersExported: l.OrdersExported,
			Status:         l.Status,
			Details:        l.Details,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func toLines(lines []queries.LineResponse) []Line {
	response := make([]Line, len(lines))
	for i, l := range lines {
		response[i] = Line{
			ProductID:      l.ProductID,
			SKU:            l.SKU,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			SubtotalCents:  l.SubtotalCents,
			Available:      l.Available,
		}
	}
	return response
}

func fromAddress(a *Address) kernel.Address {
	if a == nil {
		return kernel.Address{}
	}
	return kernel.NewAddress(a.Street, a.City, a.PostalCode, a.Phone, a.Notes)
}
