package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/korfball-stats-service/pkg/response"

	"github.com/maxviazov/korfball-stats-service/internal/service"
)

// StatsHandler exposes the derived statistical views. All endpoints are
// reads; everything is recomputed from the stored matches on each call.
type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams/:team_id/stats")
	{
		g.GET("/summary", h.summary)
		g.GET("/form", h.form)
		g.GET("/trends", h.trends)
		g.GET("/opponents", h.opponents)
		g.GET("/top-players", h.topPlayers)
		g.GET("/players", h.playerSeason)
		g.GET("/players/career", h.playerCareer)
		g.GET("/player-of-month", h.playerOfMonth)
		g.GET("/shot-types", h.shotTypeTrend)
	}
}

func teamIDParam(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	return id
}

func (h *StatsHandler) summary(c *gin.Context) {
	out, err := h.svc.SeasonSummary(c.Request.Context(), teamIDParam(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) form(c *gin.Context) {
	n, _ := strconv.Atoi(c.Query("n"))
	out, err := h.svc.Form(c.Request.Context(), teamIDParam(c), n)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) trends(c *gin.Context) {
	out, err := h.svc.MonthlyTrends(c.Request.Context(), teamIDParam(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) opponents(c *gin.Context) {
	out, err := h.svc.OpponentStats(c.Request.Context(), teamIDParam(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) topPlayers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := h.svc.TopPlayers(c.Request.Context(), teamIDParam(c), limit)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) playerSeason(c *gin.Context) {
	out, err := h.svc.PlayerSeasonStats(c.Request.Context(), teamIDParam(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) playerCareer(c *gin.Context) {
	out, err := h.svc.PlayerCareerStats(c.Request.Context(), teamIDParam(c))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) playerOfMonth(c *gin.Context) {
	out, err := h.svc.PlayerOfMonth(c.Request.Context(), teamIDParam(c), time.Now().UTC())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	// A month without a scorer is a valid answer, not a 404.
	response.WriteData(c, http.StatusOK, out)
}

func (h *StatsHandler) shotTypeTrend(c *gin.Context) {
	n, _ := strconv.Atoi(c.Query("n"))
	out, err := h.svc.ShotTypeTrend(c.Request.Context(), teamIDParam(c), n)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, out)
}
