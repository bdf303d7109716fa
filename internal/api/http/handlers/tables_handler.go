package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/auth"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/service"
)

// TablesHandler exposes dining room table endpoints.
type TablesHandler struct {
	tables *service.TableService
}

// NewTablesHandler constructs handler.
func NewTablesHandler(tableService *service.TableService) *TablesHandler {
	return &TablesHandler{tables: tableService}
}

// Create handles POST /tables.
func (h *TablesHandler) Create(c *fiber.Ctx) error {
	var req dto.TableCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.TableNumber == "" || req.Capacity < 1 {
		return fiber.NewError(http.StatusBadRequest, "table_number and capacity (>= 1) required")
	}

	table, err := h.tables.Create(c.UserContext(), req.TableNumber, req.Capacity, req.Location)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": tableView(table)})
}

// List handles GET /tables.
func (h *TablesHandler) List(c *fiber.Ctx) error {
	tables, err := h.tables.List(c.UserContext())
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]fiber.Map, 0, len(tables))
	for _, table := range tables {
		views = append(views, tableView(table))
	}
	return c.JSON(fiber.Map{"data": views})
}

// Update handles PATCH /tables/:id.
func (h *TablesHandler) Update(c *fiber.Ctx) error {
	var req dto.TableUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.TableNumber == "" || req.Capacity < 1 {
		return fiber.NewError(http.StatusBadRequest, "table_number and capacity (>= 1) required")
	}

	table, err := h.tables.Update(c.UserContext(), c.Params("id"), req.TableNumber, req.Capacity, req.Location)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": tableView(table)})
}

// Seat handles POST /tables/:id/seat. Customers seat themselves; staff may
// seat a named customer.
func (h *TablesHandler) Seat(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.SeatRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	customerID := principal.ID
	if req.CustomerID != nil {
		if !principal.Role.Staff() {
			return fiber.NewError(http.StatusForbidden, "only staff may seat another customer")
		}
		customerID = *req.CustomerID
	}

	table, err := h.tables.Seat(c.UserContext(), c.Params("id"), customerID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": tableView(table)})
}

// Close handles POST /tables/:id/close.
func (h *TablesHandler) Close(c *fiber.Ctx) error {
	table, err := h.tables.Close(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": tableView(table)})
}

func tableView(table *domain.RestaurantTable) fiber.Map {
	return fiber.Map{
		"id":           table.ID,
		"table_number": table.TableNumber,
		"capacity":     table.Capacity,
		"location":     table.Location,
		"is_occupied":  table.IsOccupied,
		"occupied_by":  table.OccupiedBy,
		"occupied_at":  table.OccupiedAt,
	}
}
