package api

import (
	"errors"
	"net/http"
	"strconv"

	"benefit-desk/internal/domain/benefit"
	"benefit-desk/internal/domain/offering"
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

type BenefitHandler struct {
	cmds  commands.BenefitCommands
	q     queries.BenefitQueries
	userQ queries.UserQueries
}

func NewBenefitHandler(cmds commands.BenefitCommands, q queries.BenefitQueries, userQ queries.UserQueries) *BenefitHandler {
	return &BenefitHandler{cmds: cmds, q: q, userQ: userQ}
}

// @Summary Submit benefit request
// @Description File a request against an offering; eligibility is checked at submission
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitRequestRequest true "Submit request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /requests [post]
func (h *BenefitHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.SubmitRequest(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errs.Is(err, offering.ErrNotEligible):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Not eligible for this offering", eligibilityDetail(err))
		case errs.Is(err, commands.ErrMemberNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Member profile not found", nil)
		case errs.Is(err, commands.ErrOfferingNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
		case errs.Is(err, benefit.ErrMalformedAnswers):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed answers payload", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Submit failed", nil)
		}
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, roleOf(c), result.RequestID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Get benefit request
// @Description Get a benefit request by ID; members can only access their own
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *BenefitHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, roleOf(c), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		case errs.Is(err, queries.ErrRequestAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List own benefit requests
// @Description List the authenticated member's requests with keyset pagination
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.RequestListItemResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/mine [get]
func (h *BenefitHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	memberID, err := h.resolveMemberID(c, userID)
	if err != nil {
		return
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
	items, next, err := h.q.ListByMember(c.Request.Context(), memberID, cursor, limit)
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

// @Summary Set request status
// @Description Move a request through its review lifecycle
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.SetRequestStatusRequest true "Status change"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id}/status [patch]
func (h *BenefitHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.SetRequestStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.SetRequestStatus(c.Request.Context(), id, req.ToCommand(), actorID); err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		case errs.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Status change failed", nil)
		}
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actorID, roleOf(c), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// resolveMemberID maps the authenticated user to their member profile and
// writes the error response itself when there is none.
func (h *BenefitHandler) resolveMemberID(c *gin.Context, userID uuid.UUID) (uuid.UUID, error) {
	user, err := h.userQ.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return uuid.Nil, err
	}
	if user.MemberID == nil {
		err = errors.New("user has no member profile")
		httperr.AbortWithError(c, http.StatusNotFound, err, "Member profile not found", nil)
		return uuid.Nil, err
	}
	return *user.MemberID, nil
}

func roleOf(c *gin.Context) string {
	role, _ := middleware.GetUserRole(c)
	return string(role)
}

// eligibilityDetail names the failed eligibility rule so clients can show a
// specific message.
func eligibilityDetail(err error) any {
	var reason string
	switch {
	case errs.Is(err, offering.ErrClosed):
		reason = "closed"
	case errs.Is(err, offering.ErrBeforeWindow):
		reason = "not_open_yet"
	case errs.Is(err, offering.ErrAfterWindow):
		reason = "window_expired"
	case errs.Is(err, offering.ErrQuotaExceeded):
		reason = "quota_exhausted"
	case errs.Is(err, offering.ErrDuplicateRequest):
		reason = "active_request_exists"
	default:
		return nil
	}
	return gin.H{"reason": reason}
}
