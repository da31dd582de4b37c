// Routing for openapi.yaml. The layout mirrors what oapi-codegen generates for
// an echo server (ServerInterface, ServerInterfaceWrapper, RegisterHandlers)
// and binds parameters with the same runtime helpers, so the file can be
// swapped for generated code once openapi.yaml grows beyond these routes.

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const customerHeader = "X-Customer-ID"

// CustomerParams carries the caller identity set by the gateway.
type CustomerParams struct {
	CustomerID int64
}

type ListExportLogsParams struct {
	Limit *int
}

// ServerInterface lists the operations of openapi.yaml with their bound parameters.
type ServerInterface interface {
	ListProducts(ctx echo.Context) error
	GetCart(ctx echo.Context, params CustomerParams) error
	AddToCart(ctx echo.Context, params CustomerParams) error
	UpdateCartItem(ctx echo.Context, productID int64, params CustomerParams) error
	RemoveCartItem(ctx echo.Context, productID int64, params CustomerParams) error
	ListOrders(ctx echo.Context, params CustomerParams) error
	PlaceOrder(ctx echo.Context, params CustomerParams) error
	GetOrder(ctx echo.Context, orderID int64, params CustomerParams) error
	CancelOrder(ctx echo.Context, orderID int64, params CustomerParams) error
	Reorder(ctx echo.Context, orderID int64, params CustomerParams) error
	FileChangeRequest(ctx echo.Context, orderID int64, params CustomerParams) error
	GetCosts(ctx echo.Context, params CustomerParams) error
	UpdateDefaultAddress(ctx echo.Context, params CustomerParams) error

	ListAllProducts(ctx echo.Context) error
	CreateProduct(ctx echo.Context) error
	UpdateProduct(ctx echo.Context, productID int64) error
	DeleteProduct(ctx echo.Context, productID int64) error
	CreateCustomer(ctx echo.Context) error
	ListPendingChangeRequests(ctx echo.Context) error
	ResolveChangeRequest(ctx echo.Context, requestID string) error
	RunExport(ctx echo.Context) error
	ListExportLogs(ctx echo.Context, params ListExportLogsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindCustomer(ctx echo.Context) (CustomerParams, error) {
	var params CustomerParams
	values := ctx.Request().Header.Values(customerHeader)
	if len(values) != 1 {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Expected exactly one "+customerHeader+" header")
	}
	err := runtime.BindStyledParameterWithOptions("simple", customerHeader, values[0], &params.CustomerID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+customerHeader+": "+err.Error())
	}
	return params, nil
}

func bindPathID(ctx echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) withCustomer(fn func(echo.Context, CustomerParams) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		params, err := bindCustomer(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, params)
	}
}

func (w *ServerInterfaceWrapper) withCustomerAndID(
	name string,
	fn func(echo.Context, int64, CustomerParams) error,
) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindPathID(ctx, name)
		if err != nil {
			return err
		}
		params, err := bindCustomer(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, id, params)
	}
}

func (w *ServerInterfaceWrapper) withID(name string, fn func(echo.Context, int64) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindPathID(ctx, name)
		if err != nil {
			return err
		}
		return fn(ctx, id)
	}
}

func (w *ServerInterfaceWrapper) ResolveChangeRequest(ctx echo.Context) error {
	var requestID string
	err := runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter requestId: "+err.Error())
	}
	return w.Handler.ResolveChangeRequest(ctx, requestID)
}

func (w *ServerInterfaceWrapper) ListExportLogs(ctx echo.Context) error {
	var params ListExportLogsParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter limit: "+err.Error())
	}
	return w.Handler.ListExportLogs(ctx, params)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of the API on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/products", si.ListProducts)
	router.GET("/api/v1/cart", w.withCustomer(si.GetCart))
	router.POST("/api/v1/cart/items", w.withCustomer(si.AddToCart))
	router.PUT("/api/v1/cart/items/:productId", w.withCustomerAndID("productId", si.UpdateCartItem))
	router.DELETE("/api/v1/cart/items/:productId", w.withCustomerAndID("productId", si.RemoveCartItem))
	router.GET("/api/v1/orders", w.withCustomer(si.ListOrders))
	router.POST("/api/v1/orders", w.withCustomer(si.PlaceOrder))
	router.GET("/api/v1/orders/:orderId", w.withCustomerAndID("orderId", si.GetOrder))
	router.POST("/api/v1/orders/:orderId/cancel", w.withCustomerAndID("orderId", si.CancelOrder))
	router.POST("/api/v1/orders/:orderId/reorder", w.withCustomerAndID("orderId", si.Reorder))
	router.POST("/api/v1/orders/:orderId/change-requests", w.withCustomerAndID("orderId", si.FileChangeRequest))
	router.GET("/api/v1/costs", w.withCustomer(si.GetCosts))
	router.PUT("/api/v1/profile/address", w.withCustomer(si.UpdateDefaultAddress))

	router.GET("/api/v1/admin/products", si.ListAllProducts)
	router.POST("/api/v1/admin/products", si.CreateProduct)
	router.PUT("/api/v1/admin/products/:productId", w.withID("productId", si.UpdateProduct))
	router.DELETE("/api/v1/admin/products/:productId", w.withID("productId", si.DeleteProduct))
	router.POST("/api/v1/admin/customers", si.CreateCustomer)
	router.GET("/api/v1/admin/change-requests", si.ListPendingChangeRequests)
	router.POST("/api/v1/admin/change-requests/:requestId/resolve", w.ResolveChangeRequest)
	router.POST("/api/v1/admin/exports", si.RunExport)
	router.GET("/api/v1/admin/exports/logs", w.ListExportLogs)
}
