// Package session covers the credential lifecycle at the HTTP edge:
// resolving a bearer token from a request, persisting it as a cookie,
// and gating routes that require one.
package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie holding the backend access token.
const CookieName = "sb"

const bearerPrefix = "Bearer "

// TokenFromRequest resolves the effective bearer token for a request.
// The Authorization header wins over the cookie so API clients can
// override a browser session; the prefix match is case-sensitive. An
// empty string means no credential. Token validity is not checked
// here; the backend rejects bad tokens on use.
func TokenFromRequest(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return header[len(bearerPrefix):]
	}
	return c.Cookies(CookieName)
}
