package supabase

import (
	"context"
	"net/http"
	"net/url"
)

// User is the public slice of an issuer identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an issued credential. The token's expiry is owned by the
// issuer; the gateway never inspects it.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// SignUpResult is the issuer's signup response. When email confirmation
// is pending the issuer returns a bare user and no session token.
type SignUpResult struct {
	AccessToken        string `json:"access_token"`
	ID                 string `json:"id"`
	Email              string `json:"email"`
	ConfirmationSentAt string `json:"confirmation_sent_at"`
	User               *User  `json:"user"`
}

// SessionIssued reports whether the issuer returned an active session.
func (r *SignUpResult) SessionIssued() bool {
	return r.AccessToken != ""
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers an account; redirectTo is where the issuer sends the
// browser after out-of-band email confirmation.
func (c *Client) SignUp(ctx context.Context, email, password, redirectTo string) (*SignUpResult, error) {
	query := url.Values{}
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}
	var result SignUpResult
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", query, nil, credentials{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignInWithPassword exchanges email/password for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	query := url.Values{"grant_type": []string{"password"}}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, nil, credentials{Email: email, Password: password}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetUser resolves the identity behind the client's bearer token.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
