package controllers

import (
	"errors"

	"github.com/SHIVA769/snapbites/pkg/resp"
	"github.com/SHIVA769/snapbites/services"
	"github.com/SHIVA769/snapbites/utils"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// POST /restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	r, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, r)
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /menu-items
func (h *RestaurantController) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.Svc.CreateMenuItem(utils.CurrentUserID(c), utils.CurrentRole(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRestaurantNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, m)
}

// GET /restaurants/:id/menu-items
func (h *RestaurantController) MenuItems(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	items, err := h.Svc.MenuItems(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
