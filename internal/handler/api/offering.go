package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "benefit-desk/internal/handler/dto/request"
	resdto "benefit-desk/internal/handler/dto/response"
	"benefit-desk/internal/handler/httperr"
	"benefit-desk/internal/handler/middleware"
	"benefit-desk/internal/pkg/errs"
	"benefit-desk/internal/usecase/commands"
	"benefit-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferingHandler struct {
	cmds commands.OfferingCommands
	q    queries.OfferingQueries
	reqQ queries.BenefitQueries
}

func NewOfferingHandler(cmds commands.OfferingCommands, q queries.OfferingQueries, reqQ queries.BenefitQueries) *OfferingHandler {
	return &OfferingHandler{cmds: cmds, q: q, reqQ: reqQ}
}

// @Summary Create offering
// @Description Create a new benefit offering
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferingRequest true "Create offering request"
// @Success 201 {object} resdto.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /offerings [post]
func (h *OfferingHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateOffering(c.Request.Context(), req.ToCommand(), actorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create offering failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.OfferingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offering", nil)
		return
	}
	resp, err := resdto.FromOfferingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offering", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get offering
// @Description Get an offering by ID
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} resdto.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id} [get]
func (h *OfferingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrOfferingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp, err := resdto.FromOfferingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List offerings
// @Description List offerings, optionally only those currently open
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param available query bool false "Only offerings open for submission"
// @Success 200 {array} resdto.OfferingResponse
// @Failure 500 {object} map[string]string
// @Router /offerings [get]
func (h *OfferingHandler) List(c *gin.Context) {
	onlyAvailable := false
	if v := c.Query("available"); v != "" {
		if b, e := strconv.ParseBool(v); e == nil {
			onlyAvailable = b
		}
	}
	views, err := h.q.List(c.Request.Context(), queries.OfferingFilters{OnlyAvailable: onlyAvailable})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp, err := resdto.FromOfferingList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offerings": resp})
}

// @Summary Update offering
// @Description Update an offering's label, description, window and quota
// @Tags offerings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body reqdto.UpdateOfferingRequest true "Update offering request"
// @Success 200 {object} resdto.OfferingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id} [put]
func (h *OfferingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateOfferingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateOffering(c.Request.Context(), id, req.ToCommand()); err != nil {
		if errs.Is(err, commands.ErrOfferingNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offering", nil)
		return
	}
	resp, err := resdto.FromOfferingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offering", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Open or close offering
// @Description Toggle whether an offering accepts new requests
// @Tags offerings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param request body reqdto.SetOfferingOpenRequest true "Open flag"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id}/open [patch]
func (h *OfferingHandler) SetOpen(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SetOfferingOpenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.SetOfferingOpen(c.Request.Context(), id, *req.Open); err != nil {
		if errs.Is(err, commands.ErrOfferingNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Update failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Offering request stats
// @Description Per-status request counts for an offering
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Success 200 {object} resdto.OfferingStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offerings/{id}/stats [get]
func (h *OfferingHandler) Stats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	stats, err := h.q.GetStats(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrOfferingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get stats", nil)
		return
	}
	resp, err := resdto.FromOfferingStats(stats)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get stats", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List offering requests
// @Description List benefit requests filed against an offering with keyset pagination
// @Tags offerings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offering ID"
// @Param status query string false "Filter by request status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.RequestListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /offerings/{id}/requests [get]
func (h *OfferingHandler) ListRequests(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var statusPtr *string
	if v := c.Query("status"); v != "" {
		statusPtr = &v
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.reqQ.ListByOffering(c.Request.Context(), id, queries.RequestFilters{Status: statusPtr}, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"requests": resdto.FromRequestList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}
