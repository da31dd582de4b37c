package http

import "time"

// Wire types of openapi.yaml. Amounts are integers in cents.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID int64 `json:"id"`
}

type CreatedUUID struct {
	ID string `json:"id"`
}

type Product struct {
	ID          int64  `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Available   bool   `json:"available"`
	MaxPerOrder int    `json:"maxPerOrder"`
}

type NewProduct struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	MaxPerOrder int    `json:"maxPerOrder"`
}

type ProductUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Available   bool   `json:"available"`
	MaxPerOrder int    `json:"maxPerOrder"`
}

type NewCustomer struct {
	Email            string   `json:"email"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	CustomerNumber   string   `json:"customerNumber"`
	DeliveryFeeCents int64    `json:"deliveryFeeCents"`
	Address          *Address `json:"address,omitempty"`
}

type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type Line struct {
	ProductID      int64  `json:"productId"`
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
	Available      bool   `json:"available"`
}

type Cart struct {
	OrderID          int64  `json:"orderId,omitempty"`
	Items            []Line `json:"items"`
	TotalCents       int64  `json:"totalCents"`
	DeliveryFeeCents int64  `json:"deliveryFeeCents"`
	GrandTotalCents  int64  `json:"grandTotalCents"`
}

type CartItemAdd struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CartItemUpdate struct {
	Quantity int `json:"quantity"`
}

type PlaceOrder struct {
	DeliveryType string     `json:"deliveryType"`
	DesiredTime  *time.Time `json:"desiredTime,omitempty"`
	Address      *Address   `json:"address,omitempty"`
}

type Order struct {
	ID               int64      `json:"id"`
	Status           string     `json:"status"`
	DeliveryType     string     `json:"deliveryType"`
	DesiredTime      *time.Time `json:"desiredTime,omitempty"`
	DeliveryAddress  *Address   `json:"deliveryAddress,omitempty"`
	Items            []Line     `json:"items"`
	TotalCents       int64      `json:"totalCents"`
	DeliveryFeeCents int64      `json:"deliveryFeeCents"`
	GrandTotalCents  int64      `json:"grandTotalCents"`
	CreatedAt        time.Time  `json:"createdAt"`
	PlacedAt         *time.Time `json:"placedAt,omitempty"`
	ExportedAt       *time.Time `json:"exportedAt,omitempty"`
	EditableUntil    *time.Time `json:"editableUntil,omitempty"`
	Editable         bool       `json:"editable"`
}

type OrderSummary struct {
	ID              int64      `json:"id"`
	Status          string     `json:"status"`
	DeliveryType    string     `json:"deliveryType"`
	PlacedAt        *time.Time `json:"placedAt,omitempty"`
	ItemCount       int        `json:"itemCount"`
	GrandTotalCents int64      `json:"grandTotalCents"`
}

type ReorderResult struct {
	CartID  int64    `json:"cartId"`
	Added   int      `json:"added"`
	Skipped []string `json:"skipped"`
}

type NewChangeRequest struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type ChangeRequest struct {
	ID            string    `json:"id"`
	OrderID       int64     `json:"orderId"`
	OrderStatus   string    `json:"orderStatus"`
	CustomerID    int64     `json:"customerId"`
	CustomerEmail string    `json:"customerEmail"`
	Type          string    `json:"type"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Resolution struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

type Costs struct {
	LastWeekCents   int64 `json:"lastWeekCents"`
	LastWeekOrders  int   `json:"lastWeekOrders"`
	LastMonthCents  int64 `json:"lastMonthCents"`
	LastMonthOrders int   `json:"lastMonthOrders"`
}

type ExportRun struct {
	Since  *time.Time `json:"since,omitempty"`
	DryRun bool       `json:"dryRun"`
}

type ExportResult struct {
	Count  int    `json:"count"`
	Batch  string `json:"batch,omitempty"`
	DryRun bool   `json:"dryRun"`
}

type ExportLog struct {
	ID             string    `json:"id"`
	RunAt          time.Time `json:"runAt"`
	OrdersExported int       `json:"ordersExported"`
	Status         string    `json:"status"`
	Details        string    `json:"details"`
}
