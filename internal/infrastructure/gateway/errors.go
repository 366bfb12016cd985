package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// errorEnvelope covers both envelope spellings the backend uses.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// APIError is a server-reported failure that maps to no domain sentinel.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// apiError turns a non-2xx response into an error. Known status codes map
// to domain sentinels so call sites can errors.Is on them; anything else
// becomes an APIError carrying the server's message, or a generic one when
// the body has none.
func (c *Client) apiError(op string, resp *resty.Response) error {
	var env errorEnvelope
	_ = json.Unmarshal(resp.Body(), &env)

	msg := env.Message
	if msg == "" {
		msg = env.Error
	}
	if msg == "" {
		msg = "something went wrong, please try again"
	}

	c.logger.Warn().
		Int("status", resp.StatusCode()).
		Str("op", op).
		Str("message", msg).
		Msg("api request failed")

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, domain.ErrInvalidCredentials)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrUserExists)
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
