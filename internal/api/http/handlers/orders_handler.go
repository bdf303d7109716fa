package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/service"
)

// OrdersHandler exposes order lifecycle endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if len(req.Items) == 0 {
		return fiber.NewError(http.StatusBadRequest, "at least one item required")
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ItemName == "" || item.Quantity < 1 || item.UnitPrice.IsNegative() {
			return fiber.NewError(http.StatusBadRequest, "items need item_name, quantity >= 1 and non-negative unit_price")
		}
		items = append(items, service.OrderItemInput{
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.orders.Create(c.UserContext(), principal.ID, req.TableID, req.SpecialRequest, items)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderView(order)})
}

// List handles GET /orders: customers see their own orders, waiters their
// assigned ones.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var (
		orders []*domain.Order
		err    error
	)
	switch principal.Role {
	case domain.RoleWaiter:
		orders, err = h.orders.ListForWaiter(c.UserContext(), principal.ID)
	default:
		orders, err = h.orders.ListForCustomer(c.UserContext(), principal.ID)
	}
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]fiber.Map, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView(order))
	}
	return c.JSON(fiber.Map{"data": views})
}

// KitchenQueue handles GET /orders/kitchen.
func (h *OrdersHandler) KitchenQueue(c *fiber.Ctx) error {
	orders, err := h.orders.KitchenQueue(c.UserContext())
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]fiber.Map, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView(order))
	}
	return c.JSON(fiber.Map{"data": views})
}

// Approve handles POST /orders/:id/approve.
func (h *OrdersHandler) Approve(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	order, err := h.orders.Approve(c.UserContext(), c.Params("id"), principal.ID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": orderView(order)})
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.OrderStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		return fiber.NewError(http.StatusBadRequest, "invalid status")
	}

	order, err := h.orders.UpdateStatus(c.UserContext(), c.Params("id"), status)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": orderView(order)})
}

func orderView(order *domain.Order) fiber.Map {
	items := make([]fiber.Map, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, fiber.Map{
			"id":           item.ID,
			"menu_item_id": item.MenuItemID,
			"item_name":    item.ItemName,
			"unit_price":   item.UnitPrice,
			"quantity":     item.Quantity,
			"line_total":   item.LineTotal(),
		})
	}

	return fiber.Map{
		"id":              order.ID,
		"customer_id":     order.CustomerID,
		"waiter_id":       order.WaiterID,
		"table_id":        order.TableID,
		"status":          order.Status,
		"special_request": order.SpecialRequest,
		"total_amount":    order.TotalAmount,
		"is_paid":         order.IsPaid,
		"items":           items,
	}
}
