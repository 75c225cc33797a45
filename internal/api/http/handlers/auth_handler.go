package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-gateway/internal/api/dto"
	"github.com/spec-kit/course-gateway/internal/session"
	"github.com/spec-kit/course-gateway/internal/supabase"
	apperrors "github.com/spec-kit/course-gateway/pkg/util"
)

// AuthHandler exposes the session endpoints. It never verifies
// credentials itself; every decision belongs to the identity issuer.
type AuthHandler struct {
	store   *supabase.Factory
	appURL  string
	cookies session.CookieOptions
}

// NewAuthHandler constructs handler.
func NewAuthHandler(store *supabase.Factory, appURL string, cookies session.CookieOptions) *AuthHandler {
	return &AuthHandler{store: store, appURL: appURL, cookies: cookies}
}

// Signup handles POST /api/auth/signup. The issuer sends the
// confirmation email; after the user clicks through it redirects back
// to the frontend.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	result, err := h.store.Anonymous().SignUp(c.UserContext(), req.Email, req.Password, h.appURL+"/auth?confirmed=1")
	if err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) {
			return apperrors.NewSignupFailed(apiErr.Message)
		}
		return err
	}

	return c.JSON(dto.SignupResponse{
		Status:            "ok",
		NeedsEmailConfirm: !result.SessionIssued(),
	})
}

// Login handles POST /api/auth/login. On success the issued token is
// stored client-side as the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	sess, err := h.store.Anonymous().SignInWithPassword(c.UserContext(), req.Email, req.Password)
	if err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) {
			return apperrors.NewAuthFailed(apiErr.Message)
		}
		return err
	}
	if sess.AccessToken == "" {
		return apperrors.NewAuthFailed("no session")
	}

	session.SetCookie(c, sess.AccessToken, h.cookies)
	return c.JSON(fiber.Map{"ok": true})
}

// Logout handles POST /api/auth/logout. Always succeeds, cookie or not.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session.ClearCookie(c, h.cookies)
	return c.JSON(fiber.Map{"ok": true})
}

// Me handles GET /api/auth/me, the frontend's "am I logged in" probe.
// Unlike the route gate it asks the issuer whether the token still
// resolves to an identity, and it reports failure as a plain
// unauthenticated result rather than an error.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	token := session.TokenFromRequest(c)
	if token == "" {
		return c.JSON(dto.MeResponse{Authenticated: false})
	}

	user, err := h.store.WithToken(token).GetUser(c.UserContext())
	if err != nil || user.Email == "" {
		return c.JSON(dto.MeResponse{Authenticated: false})
	}

	return c.JSON(dto.MeResponse{Authenticated: true, Email: user.Email})
}
