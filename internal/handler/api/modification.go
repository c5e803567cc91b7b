package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"benefit-desk/internal/domain/modification"
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

type ModificationHandler struct {
	cmds  commands.ModificationCommands
	q     queries.ModificationQueries
	userQ queries.UserQueries
}

func NewModificationHandler(cmds commands.ModificationCommands, q queries.ModificationQueries, userQ queries.UserQueries) *ModificationHandler {
	return &ModificationHandler{cmds: cmds, q: q, userQ: userQ}
}

// @Summary Propose record update
// @Description Propose changes to the member's own record, spouse or dependent
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProposeUpdateRequest true "Propose update request"
// @Success 201 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /proposals [post]
func (h *ModificationHandler) ProposeUpdate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.ProposeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid values payload", nil)
		return
	}
	result, err := h.cmds.ProposeUpdate(c.Request.Context(), cmd, userID)
	if err != nil {
		h.abortProposeErr(c, err)
		return
	}
	h.respondProposal(c, http.StatusCreated, userID, result.ProposalID)
}

// @Summary Propose record creation
// @Description Propose adding a spouse or dependent to the member's household
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProposeCreationRequest true "Propose creation request"
// @Success 201 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /proposals/creations [post]
func (h *ModificationHandler) ProposeCreation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.ProposeCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid values payload", nil)
		return
	}
	result, err := h.cmds.ProposeCreation(c.Request.Context(), cmd, userID)
	if err != nil {
		h.abortProposeErr(c, err)
		return
	}
	h.respondProposal(c, http.StatusCreated, userID, result.ProposalID)
}

// @Summary Get proposal
// @Description Get a proposal by ID; members can only access their own
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /proposals/{id} [get]
func (h *ModificationHandler) Get(c *gin.Context) {
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
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposalView(view))
}

// @Summary Proposal review diff
// @Description Field-by-field changes a proposal would apply, with document fields masked
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {array} resdto.ProposalChangeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /proposals/{id}/changes [get]
func (h *ModificationHandler) Changes(c *gin.Context) {
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
	changes, err := h.q.GetChanges(c.Request.Context(), userID, roleOf(c), id)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changes": resdto.FromProposalChanges(changes)})
}

// @Summary List pending proposals
// @Description List proposals awaiting review with keyset pagination
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ProposalListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /proposals/pending [get]
func (h *ModificationHandler) ListPending(c *gin.Context) {
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
	items, next, err := h.q.ListPending(c.Request.Context(), cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"proposals": resdto.FromProposalList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Pending proposal count
// @Description Number of proposals awaiting review, for the staff dashboard
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 403 {object} map[string]string
// @Router /proposals/pending/count [get]
func (h *ModificationHandler) PendingCount(c *gin.Context) {
	count, err := h.q.PendingCount(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending_count": count})
}

// @Summary List own proposals
// @Description List the authenticated member's proposals, newest first
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProposalListItemResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /proposals/mine [get]
func (h *ModificationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	user, err := h.userQ.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	if user.MemberID == nil {
		err = errors.New("user has no member profile")
		httperr.AbortWithError(c, http.StatusNotFound, err, "Member profile not found", nil)
		return
	}
	items, err := h.q.ListByMember(c.Request.Context(), *user.MemberID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposals": resdto.FromProposalList(items)})
}

// @Summary Approve proposal
// @Description Approve a pending proposal and apply its changes
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.ProcessProposalRequest true "Review comment"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /proposals/{id}/approve [post]
func (h *ModificationHandler) Approve(c *gin.Context) {
	h.process(c, h.cmds.ApproveProposal)
}

// @Summary Reject proposal
// @Description Reject a pending proposal without applying it
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.ProcessProposalRequest true "Review comment"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /proposals/{id}/reject [post]
func (h *ModificationHandler) Reject(c *gin.Context) {
	h.process(c, h.cmds.RejectProposal)
}

func (h *ModificationHandler) process(c *gin.Context, fn func(ctx context.Context, proposalID uuid.UUID, req commands.ProcessProposalRequest, actorID uuid.UUID) error) {
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
	var req reqdto.ProcessProposalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = fn(c.Request.Context(), id, req.ToCommand(), actorID); err != nil {
		switch {
		case errs.Is(err, commands.ErrProposalNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Proposal not found", nil)
		case errs.Is(err, modification.ErrAlreadyProcessed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Proposal already processed", nil)
		case errs.Is(err, commands.ErrTargetNotFound):
			httperr.AbortWithError(c, http.StatusConflict, err, "Proposal target no longer exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Processing failed", nil)
		}
		return
	}
	h.respondProposal(c, http.StatusOK, actorID, id)
}

func (h *ModificationHandler) respondProposal(c *gin.Context, status int, actorID uuid.UUID, proposalID uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actorID, roleOf(c), proposalID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load proposal", nil)
		return
	}
	c.JSON(status, resdto.FromProposalView(view))
}

func (h *ModificationHandler) abortProposeErr(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrMemberNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Member profile not found", nil)
	case errs.Is(err, commands.ErrTargetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Target record not found", nil)
	case errs.Is(err, commands.ErrTargetNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Target record not owned by member", nil)
	case errs.Is(err, commands.ErrDuplicatePending):
		httperr.AbortWithError(c, http.StatusConflict, err, "A pending proposal already exists for this target", nil)
	case errs.Is(err, commands.ErrCreationNotSupported):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Creation is not supported for this kind", nil)
	case errs.Is(err, modification.ErrSerialization):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid values payload", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Propose failed", nil)
	}
}

func (h *ModificationHandler) abortQueryErr(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrProposalNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Proposal not found", nil)
	case errs.Is(err, queries.ErrProposalAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
