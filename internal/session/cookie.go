package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// TTL is the client-side cookie lifetime. The token inside may expire
// sooner; the backend decides that per call.
const TTL = 24 * time.Hour

// CookieOptions are the environment-dependent cookie attributes. Set
// and Clear must use the same options value or browsers will not
// remove the cookie on logout.
type CookieOptions struct {
	Secure   bool
	SameSite string
}

// Options derives cookie attributes from the deployment mode. A
// production frontend lives on a different site, so the cookie must be
// SameSite=None and Secure; in development Lax over plain HTTP works.
func Options(production bool) CookieOptions {
	if production {
		return CookieOptions{Secure: true, SameSite: fiber.CookieSameSiteNoneMode}
	}
	return CookieOptions{Secure: false, SameSite: fiber.CookieSameSiteLaxMode}
}

// SetCookie attaches the session cookie to the response.
func SetCookie(c *fiber.Ctx, token string, opts CookieOptions) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie expires the session cookie. Attributes mirror SetCookie
// exactly; idempotent when no cookie was present.
func ClearCookie(c *fiber.Ctx, opts CookieOptions) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
