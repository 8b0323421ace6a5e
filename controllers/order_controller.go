package controllers

import (
	"errors"

	"github.com/SHIVA769/snapbites/pkg/resp"
	"github.com/SHIVA769/snapbites/services"
	"github.com/SHIVA769/snapbites/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders — checkout from the current cart
func (h *OrderController) Create(c *gin.Context) {
	order, err := h.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
