package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/api/dto"
	"github.com/spec-kit/pos-service/internal/domain"
	"github.com/spec-kit/pos-service/internal/service"
)

// MenuHandler exposes menu category and item endpoints.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// CreateCategory handles POST /menu/categories.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category, err := h.menu.CreateCategory(c.UserContext(), req.Name, req.Description, isActive)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": categoryView(category)})
}

// ListCategories handles GET /menu/categories.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.menu.ListCategories(c.UserContext())
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]fiber.Map, 0, len(categories))
	for _, category := range categories {
		views = append(views, categoryView(category))
	}
	return c.JSON(fiber.Map{"data": views})
}

// CreateItem handles POST /menu/items.
func (h *MenuHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.MenuItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}
	if req.Price.IsNegative() {
		return fiber.NewError(http.StatusBadRequest, "price must be non-negative")
	}

	item, err := h.menu.CreateItem(c.UserContext(), req.CategoryID, req.Name, req.Description, req.Price)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": itemView(item)})
}

// ListItems handles GET /menu/items.
func (h *MenuHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.menu.ListItems(c.UserContext())
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		views = append(views, itemView(item))
	}
	return c.JSON(fiber.Map{"data": views})
}

// GetItem handles GET /menu/items/:id.
func (h *MenuHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.menu.GetItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(fiber.Map{"data": itemView(item)})
}

func categoryView(category *domain.MenuCategory) fiber.Map {
	return fiber.Map{
		"id":          category.ID,
		"name":        category.Name,
		"description": category.Description,
		"is_active":   category.IsActive,
	}
}

func itemView(item *domain.MenuItem) fiber.Map {
	return fiber.Map{
		"id":          item.ID,
		"category_id": item.CategoryID,
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
	}
}
