package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"invitepages/internal/delivery/http/helpers"
	"invitepages/internal/domain"
)

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// GetInvitation godoc
// @Summary Get a resolved invitation page
// @Description Resolve the invitation stored under the slug into a fully gated page view-model: canonical content with tier limits applied, per-section gate decisions, the dispatched skin variant, and a countdown snapshot. Missing, inactive, and malformed invitations all answer 404.
// @Tags invitations
// @Produce json
// @Param slug path string true "Invitation slug"
// @Success 200 {object} controllers.InvitationPageSuccessResponse "data contains the resolved page"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug} [get]
func (c *InvitationController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, false)
}

// PreviewInvitation godoc
// @Summary Preview a resolved invitation page (admin)
// @Description Same resolution as GET /invitations/{slug}, plus the diagnostic overlay (raw skin id, tier label) and placeholder fallbacks on suppressed sections. Does not count as a page view.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Invitation slug"
// @Success 200 {object} controllers.InvitationPageSuccessResponse "data contains the resolved page with preview overlay"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug}/preview [get]
func (c *InvitationController) PreviewInvitation(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, true)
}

func (c *InvitationController) render(w http.ResponseWriter, r *http.Request, preview bool) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "slug is required")
		return
	}
	page, err := c.Service.GetRenderPage(r.Context(), slug, preview)
	if err != nil {
		// Malformed content answers exactly like a missing record.
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrMalformedContent) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}

// InvitationPageSuccessResponse is the success envelope for invitation page endpoints.
type InvitationPageSuccessResponse struct {
	Data  *domain.InvitationPage `json:"data"`
	Error *helpers.APIError      `json:"error"`
}
