package controllers

import (
	"errors"

	"github.com/SHIVA769/snapbites/pkg/resp"
	"github.com/SHIVA769/snapbites/services"
	"github.com/SHIVA769/snapbites/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /users/activities
func (h *UserController) Activities(c *gin.Context) {
	acts, err := h.Svc.Activities(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, acts)
}

// POST /users/:id/follow
func (h *UserController) ToggleFollow(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}

	following, err := h.Svc.ToggleFollow(utils.CurrentUserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"following": following})
}

// GET /users/:id/profile
func (h *UserController) Profile(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}

	profile, err := h.Svc.Profile(id, utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, profile)
}

// GET /creator/commissions
func (h *UserController) CommissionStats(c *gin.Context) {
	stats, err := h.Svc.CommissionStats(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
