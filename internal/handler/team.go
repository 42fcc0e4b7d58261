package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/korfball-stats-service/internal/repository"
	"github.com/maxviazov/korfball-stats-service/internal/service"
	"github.com/maxviazov/korfball-stats-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		// Static segment before the wildcard so gin routes it correctly.
		g.GET("/merge-target", h.mergeTarget)
		// Use a stable wildcard name (team_id) so nested routes (players,
		// matches, stats) can reuse it without Gin conflicts.
		g.GET("/:team_id", h.getByID)
		g.POST("/:team_id/players", h.addPlayer)
		g.GET("/:team_id/players", h.listRoster)
	}
}

type createTeamRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // parsing details stay internal
		return
	}
	team, err := h.svc.CreateTeam(c.Request.Context(), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, team)
}

func (h *TeamHandler) getByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	team, err := h.svc.GetTeam(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	res, err := h.svc.ListTeams(c.Request.Context(), repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

type addPlayerRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) addPlayer(c *gin.Context) {
	teamID, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	var req addPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.AddPlayer(c.Request.Context(), teamID, req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, player)
}

func (h *TeamHandler) listRoster(c *gin.Context) {
	teamID, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	players, err := h.svc.ListRoster(c.Request.Context(), teamID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *TeamHandler) mergeTarget(c *gin.Context) {
	name := c.Query("name")
	target, err := h.svc.SuggestMergeTarget(c.Request.Context(), name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, target)
}
