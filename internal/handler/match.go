package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/korfball-stats-service/internal/model"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
	"github.com/maxviazov/korfball-stats-service/internal/service"
	"github.com/maxviazov/korfball-stats-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.POST("", h.create)
		g.GET("/:match_id", h.getByID)
		g.GET("/:match_id/timeline", h.timeline)
		g.PATCH("/:match_id/shareable", h.setShareable)
	}
	// Listing lives under the owning team.
	r.Group("/teams").GET("/:team_id/matches", h.listByTeam)
}

type saveMatchRequest struct {
	TeamID        int64                `json:"team_id"`
	TeamName      string               `json:"teamName"`
	Opponent      string               `json:"opponent"`
	Date          string               `json:"date"`
	Players       []model.MatchPlayer  `json:"players"`
	Score         int                  `json:"score"`
	OpponentScore int                  `json:"opponentScore"`
	OpponentGoals []model.OpponentGoal `json:"opponentGoals"`
	Goals         []model.Goal         `json:"goals"`
	// Finished is a pointer on purpose: clients that never send the field
	// get finished=true, matching how completed matches have always been
	// written. Only an explicit false keeps a match out of the aggregates.
	Finished  *bool `json:"finished"`
	Shareable bool  `json:"shareable"`
}

func (h *MatchHandler) create(c *gin.Context) {
	var req saveMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	m := model.Match{
		TeamID:        req.TeamID,
		TeamName:      req.TeamName,
		Opponent:      req.Opponent,
		Date:          req.Date,
		Players:       req.Players,
		Score:         req.Score,
		OpponentScore: req.OpponentScore,
		OpponentGoals: req.OpponentGoals,
		Goals:         req.Goals,
		Finished:      req.Finished == nil || *req.Finished,
		Shareable:     req.Shareable,
	}
	out, err := h.svc.SaveMatch(c.Request.Context(), m)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, out)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
	m, err := h.svc.GetMatch(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *MatchHandler) listByTeam(c *gin.Context) {
	teamID, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	res, err := h.svc.ListMatchesByTeam(c.Request.Context(), teamID, repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *MatchHandler) timeline(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
	events, err := h.svc.GetTimeline(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, events)
}

type setShareableRequest struct {
	Shareable bool `json:"shareable"`
}

func (h *MatchHandler) setShareable(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
	var req setShareableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	m, err := h.svc.SetShareable(c.Request.Context(), id, req.Shareable)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}
