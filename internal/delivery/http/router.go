package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"invitepages/internal/delivery/http/controllers"
	"invitepages/internal/delivery/http/middleware"
	"invitepages/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	adminService domain.AdminService,
	invitationController *controllers.InvitationController,
	rsvpController *controllers.RSVPController,
	adminController *controllers.AdminController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(adminService, logger)

	// Public invitation pages
	mux.HandleFunc("GET /invitations/{slug}", invitationController.GetInvitation)
	mux.HandleFunc("POST /invitations/{slug}/rsvp", rsvpController.SubmitRSVP)

	// Admin
	mux.HandleFunc("POST /admin/login", adminController.Login)
	mux.HandleFunc("GET /invitations/{slug}/preview", requireAdmin(invitationController.PreviewInvitation))
	mux.HandleFunc("POST /admin/media", requireAdmin(adminController.UploadMedia))
	mux.HandleFunc("POST /admin/welcome-email", requireAdmin(adminController.SendWelcomeEmail))
	mux.HandleFunc("GET /admin/invitations/{slug}/rsvps", requireAdmin(rsvpController.ListRSVPs))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
