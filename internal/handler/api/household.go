package api

import (
	"errors"
	"net/http"

	resdto "benefit-desk/internal/handler/dto/response"
	"benefit-desk/internal/handler/httperr"
	"benefit-desk/internal/handler/middleware"
	"benefit-desk/internal/pkg/errs"
	"benefit-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HouseholdHandler struct {
	q queries.HouseholdQueries
}

func NewHouseholdHandler(q queries.HouseholdQueries) *HouseholdHandler {
	return &HouseholdHandler{q: q}
}

// @Summary Get own household
// @Description The authenticated member's record with their spouses and dependents
// @Tags household
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HouseholdResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /household/mine [get]
func (h *HouseholdHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	view, err := h.q.GetMine(c.Request.Context(), userID)
	if err != nil {
		if errs.Is(err, queries.ErrHouseholdNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member profile not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp, err := resdto.FromHouseholdView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
