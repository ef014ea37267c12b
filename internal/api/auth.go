package api

import (
	"context"
	"net/http"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleAuthRequest struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session. The returned token is not
// stored automatically; callers decide when to persist it via SetAuthToken.
func (c *Client) Login(ctx context.Context, email, password string) (models.AuthSession, error) {
	body := loginRequest{Email: email, Password: password}
	return doJSON[models.AuthSession](ctx, c, http.MethodPost, endpointAuth+"/login", body)
}

// GoogleAuth exchanges a Google id token for a session.
func (c *Client) GoogleAuth(ctx context.Context, idToken string) (models.AuthSession, error) {
	body := googleAuthRequest{Token: idToken}
	return doJSON[models.AuthSession](ctx, c, http.MethodPost, endpointAuth+"/google", body)
}

// Logout ends the remote session, then clears the stored token. When the
// remote call fails the token is intentionally left in place so the next
// attempt can still authenticate.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doVoid(ctx, http.MethodPost, endpointAuth+"/logout", nil); err != nil {
		return err
	}
	return c.tokens.Clear()
}

// RefreshToken requests a fresh session for the current token.
func (c *Client) RefreshToken(ctx context.Context) (models.AuthSession, error) {
	return doJSON[models.AuthSession](ctx, c, http.MethodPost, endpointAuth+"/refresh", nil)
}
