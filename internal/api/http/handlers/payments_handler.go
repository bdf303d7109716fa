package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/service"
)

// PaymentsHandler exposes payment endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// Record handles POST /payments.
func (h *PaymentsHandler) Record(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.OrderID == "" {
		return fiber.NewError(http.StatusBadRequest, "order_id required")
	}
	if !req.Amount.IsPositive() {
		return fiber.NewError(http.StatusBadRequest, "amount must be positive")
	}

	method := domain.PaymentMethod(req.Method)
	if !method.Valid() {
		return fiber.NewError(http.StatusBadRequest, "method must be one of card, cash, pos")
	}

	var customerID *string
	if principal.Role == domain.RoleCustomer {
		customerID = &principal.ID
	}

	payment, err := h.payments.Record(c.UserContext(), customerID, req.OrderID, req.Amount, method)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": paymentView(payment)})
}

// ListForOrder handles GET /payments/order/:orderId.
func (h *PaymentsHandler) ListForOrder(c *fiber.Ctx) error {
	payments, err := h.payments.ListForOrder(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]fiber.Map, 0, len(payments))
	for _, payment := range payments {
		views = append(views, paymentView(payment))
	}
	return c.JSON(fiber.Map{"data": views})
}

func paymentView(payment *domain.Payment) fiber.Map {
	return fiber.Map{
		"id":            payment.ID,
		"order_id":      payment.OrderID,
		"customer_id":   payment.CustomerID,
		"amount":        payment.Amount,
		"method":        payment.Method,
		"is_successful": payment.IsSuccessful,
		"paid_at":       payment.PaidAt,
	}
}
