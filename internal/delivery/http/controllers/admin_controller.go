package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"invitepages/internal/delivery/http/helpers"
	"invitepages/internal/domain"
)

// multipart form memory ceiling; anything past the media size limit plus
// a little form overhead is rejected outright.
const uploadBodyLimit = domain.MaxMediaSizeBytes + 1<<20

// AdminLoginRequest is the request body for POST /admin/login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator. Returns error messages for required fields.
func (r AdminLoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// AdminLoginResponse is the success payload for POST /admin/login.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// MediaUploadResponse is the success payload for POST /admin/media.
type MediaUploadResponse struct {
	URL string `json:"url"`
}

// WelcomeEmailRequest is the request body for POST /admin/welcome-email.
type WelcomeEmailRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
}

// Validate implements Validator. Returns error messages for required fields.
func (r WelcomeEmailRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs = append(errs, "slug is required")
	}
	return errs
}

type AdminController struct {
	Logger       *slog.Logger
	AdminService domain.AdminService
	MediaService domain.MediaService
	EmailService domain.EmailService
}

func NewAdminController(logger *slog.Logger, adminSvc domain.AdminService, mediaSvc domain.MediaService, emailSvc domain.EmailService) *AdminController {
	return &AdminController{
		Logger:       logger,
		AdminService: adminSvc,
		MediaService: mediaSvc,
		EmailService: emailSvc,
	}
}

// Login godoc
// @Summary Log in to the admin area
// @Description Authenticate the single authorized admin identity. Every failed attempt answers the same generic 401.
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} helpers.APIResponse "data contains the session token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.AdminService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "access denied")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "admin_session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminLoginResponse{Token: token})
}

// UploadMedia godoc
// @Summary Upload an invitation image (admin)
// @Description Accepts one multipart "file" part: jpeg, png, or webp up to 5 MiB. Returns the public URL of the stored object.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} helpers.APIResponse "data contains the public URL"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/media [post]
func (c *AdminController) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, uploadBodyLimit)
	if err := r.ParseMultipartForm(uploadBodyLimit); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file exceeds the 5 MiB limit or the form is malformed")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not read file")
		return
	}

	upload := &domain.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}
	url, err := c.MediaService.Upload(r.Context(), upload)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, vErr.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, MediaUploadResponse{URL: url})
}

// SendWelcomeEmail godoc
// @Summary Send the welcome email for a published invitation (admin)
// @Description Dispatch one welcome message to the invitation owner. Malformed recipient addresses are rejected locally without a network call.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param welcome body WelcomeEmailRequest true "Recipient, display name, and slug"
// @Success 202 {object} helpers.APIResponse "data is null; the message was dispatched"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/welcome-email [post]
func (c *AdminController) SendWelcomeEmail(w http.ResponseWriter, r *http.Request) {
	var req WelcomeEmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.EmailService.SendWelcomeMessage(r.Context(), &domain.WelcomeMessageEmailData{
		Email: req.Email,
		Name:  req.Name,
		Slug:  req.Slug,
	})
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, vErr.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, nil)
}
