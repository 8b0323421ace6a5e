package controllers

import (
	"errors"

	"github.com/SHIVA769/snapbites/pkg/resp"
	"github.com/SHIVA769/snapbites/services"
	"github.com/SHIVA769/snapbites/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrMenuItemMismatch):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	cart, subtotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}
