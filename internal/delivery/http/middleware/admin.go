package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	h "invitepages/internal/delivery/http/helpers"
	"invitepages/internal/domain"
)

// adminSessionCookie carries the admin token for browser sessions;
// API clients may send a Bearer header instead.
const adminSessionCookie = "admin_session"

// loginPath is the surface unauthorized admin requests are redirected to.
const loginPath = "/admin/login?denied=1"

// RequireAdmin returns a wrapper that admits only the whitelisted admin
// identity. Every other request, authenticated or not, gets the same
// generic denial: JSON clients a 401, browsers a redirect to the login
// surface. Which check failed is never revealed.
func RequireAdmin(admin domain.AdminService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := adminToken(r)
			if token == "" || admin.Authorize(r.Context(), token) != nil {
				deny(w, r)
				return
			}
			next(w, r)
		}
	}
}

func adminToken(r *http.Request) string {
	const prefix = "Bearer "
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	if c, err := r.Cookie(adminSessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func deny(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "access denied")
		return
	}
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}
