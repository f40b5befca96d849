package handler

import (
	"fmt"
	"strconv"

	"go-inventory-orders/internal/apperr"
	"go-inventory-orders/internal/model"
	"go-inventory-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

type createOrderRequest struct {
	Items []service.OrderLine `json:"items"`
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.CreateOrder(req.Items)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	status, err := model.ParseOrderStatus(c.Query("status"))
	if err != nil {
		return respondError(c, fmt.Errorf("%w: %s", apperr.ErrInvalidArgument, err))
	}

	order, err := h.service.UpdateStatus(uint(id), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) GetSummary(c *fiber.Ctx) error {
	orders, err := h.service.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.service.SummarizeOrderValue(orders))
}
