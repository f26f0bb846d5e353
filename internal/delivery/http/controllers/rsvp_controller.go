package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"invitepages/internal/delivery/http/helpers"
	"invitepages/internal/domain"
)

// SubmitRSVPRequest is the request body for POST /invitations/{slug}/rsvp.
type SubmitRSVPRequest struct {
	GuestName  string `json:"guest_name"`
	Attending  *bool  `json:"attending"`
	Companions int    `json:"companions"`
	Message    string `json:"message"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (r SubmitRSVPRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.GuestName) == "" {
		errs = append(errs, "guest_name is required")
	}
	if r.Attending == nil {
		errs = append(errs, "attending is required")
	}
	if r.Companions < 0 {
		errs = append(errs, "companions must not be negative")
	}
	return errs
}

// RSVPSuccessResponse is the success envelope for RSVP endpoints.
type RSVPSuccessResponse struct {
	Data  *domain.RSVPResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitRSVP godoc
// @Summary Submit a guest response
// @Description Record a guest's response to the invitation stored under the slug. The invitation must be active and must accept responses (rsvp feature enabled and visible).
// @Tags rsvp
// @Accept json
// @Produce json
// @Param slug path string true "Invitation slug"
// @Param rsvp body SubmitRSVPRequest true "Guest response"
// @Success 201 {object} controllers.RSVPSuccessResponse "data contains the recorded response"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{slug}/rsvp [post]
func (c *RSVPController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "slug is required")
		return
	}
	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.Service.SubmitRSVP(r.Context(), slug, req.GuestName, *req.Attending, req.Companions, req.Message)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, resp)
}

// ListRSVPs godoc
// @Summary List guest responses (admin)
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Invitation slug"
// @Success 200 {object} helpers.APIResponse "data contains the response list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/invitations/{slug}/rsvps [get]
func (c *RSVPController) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "slug is required")
		return
	}
	responses, err := c.Service.ListResponsesBySlug(r.Context(), slug)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, responses)
}

func (c *RSVPController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, fmt.Sprintf("%s %s", vErr.Field, vErr.Reason))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrMalformedContent):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation not found")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "invitation does not accept responses")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}
