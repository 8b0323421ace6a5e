package controllers

import (
	"github.com/SHIVA769/snapbites/pkg/resp"
	"github.com/SHIVA769/snapbites/services"
	"github.com/SHIVA769/snapbites/utils"
	"github.com/gin-gonic/gin"
)

type RecommendationController struct{ Svc *services.RecommendationService }

func NewRecommendationController(s *services.RecommendationService) *RecommendationController {
	return &RecommendationController{Svc: s}
}

// GET /recommendations?lat=&lng=
func (h *RecommendationController) List(c *gin.Context) {
	items, err := h.Svc.Recommend(utils.CurrentUserID(c), parseCoord(c, "lat"), parseCoord(c, "lng"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
