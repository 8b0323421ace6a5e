package controllers

import (
	"errors"
	"strconv"

	"github.com/SHIVA769/snapbites/pkg/resp"
	"github.com/SHIVA769/snapbites/services"
	"github.com/SHIVA769/snapbites/utils"
	"github.com/gin-gonic/gin"
)

type ReelController struct {
	Feed *services.FeedService
	Svc  *services.ReelService
}

func NewReelController(feed *services.FeedService, svc *services.ReelService) *ReelController {
	return &ReelController{Feed: feed, Svc: svc}
}

func parseCoord(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseUintQuery(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Query(name), 10, 64)
	return uint(v)
}

func paramID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// GET /reels?filter=&restaurant=&menuItem=&search=&lat=&lng=
func (h *ReelController) List(c *gin.Context) {
	q := services.FeedQuery{
		Filter:       c.Query("filter"),
		RestaurantID: parseUintQuery(c, "restaurant"),
		MenuItemID:   parseUintQuery(c, "menuItem"),
		Search:       c.Query("search"),
		Lat:          parseCoord(c, "lat"),
		Lng:          parseCoord(c, "lng"),
	}

	reels, err := h.Feed.List(utils.CurrentUserID(c), q)
	if err != nil {
		if errors.Is(err, services.ErrAuthRequired) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reels)
}

// POST /reels
func (h *ReelController) Create(c *gin.Context) {
	var req services.CreateReelIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	reel, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, reel)
}

// POST /reels/:id/like
func (h *ReelController) ToggleLike(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid reel id")
		return
	}

	liked, likesCount, err := h.Svc.ToggleLike(utils.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrReelNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"liked": liked, "likesCount": likesCount})
}

// POST /reels/:id/save
func (h *ReelController) ToggleSave(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid reel id")
		return
	}

	saved, err := h.Svc.ToggleSave(utils.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrReelNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"saved": saved})
}

// GET /reels/saved
func (h *ReelController) Saved(c *gin.Context) {
	reels, err := h.Svc.SavedReels(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reels)
}

// POST /reels/:id/comments
func (h *ReelController) AddComment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid reel id")
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	comment, err := h.Svc.AddComment(utils.CurrentUserID(c), id, body.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCommentRequired):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrReelNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, comment)
}

// GET /reels/:id/comments
func (h *ReelController) Comments(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		resp.BadRequest(c, "invalid reel id")
		return
	}

	comments, err := h.Svc.Comments(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, comments)
}

// GET /creator/analytics
func (h *ReelController) Analytics(c *gin.Context) {
	stats, err := h.Svc.CreatorAnalytics(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
