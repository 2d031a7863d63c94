package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/inkpost/utils"
)

// StatsController serves global row counts.
type StatsController struct {
	Deps
}

func NewStatsController(deps Deps) *StatsController {
	return &StatsController{Deps: deps}
}

// GetStats returns the number of users, articles, likes and follow edges.
// @Summary  Global counts
// @Tags     stats
// @Produce  json
// @Success  200 {object} utils.JSONResponse
// @Router   /stats [get]
func (s *StatsController) GetStats(ctx *gin.Context) {
	st, err := s.Users.Stats(ctx.Request.Context())
	if err != nil {
		utils.Internal(ctx, err)
		return
	}
	utils.OK(ctx, st)
}
