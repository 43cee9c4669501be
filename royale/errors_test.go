package royale

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode int
		wantOK   bool
	}{
		{
			name:     "plain trailing code",
			message:  "upstream call failed: 400",
			wantCode: 400,
			wantOK:   true,
		},
		{
			name:     "transport message shape",
			message:  "request to http://api.cr-api.com/profile/2PP failed: 404",
			wantCode: 404,
			wantOK:   true,
		},
		{
			name:     "trailing whitespace after code",
			message:  "throttled: 429 ",
			wantCode: 429,
			wantOK:   true,
		},
		{
			name:     "no space after colon",
			message:  "status:503",
			wantCode: 503,
			wantOK:   true,
		},
		{
			name:    "no code at all",
			message: "connection reset by peer",
			wantOK:  false,
		},
		{
			name:    "digits without preceding colon",
			message: "failed after 3 retries with code 500x",
			wantOK:  false,
		},
		{
			name:    "code not at end",
			message: "got: 404: resource missing",
			wantOK:  false,
		},
		{
			name:    "negative number",
			message: "exit status: -1",
			wantOK:  false,
		},
		{
			name:    "empty message",
			message: "",
			wantOK:  false,
		},
		{
			name:    "bare colon",
			message: "timeout:",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ParseStatusCode(tt.message)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, code)
			} else {
				assert.Zero(t, code)
			}
		})
	}
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		code          int
		notFound      bool
		unauthorized  bool
		rateLimited   bool
		serverFailure bool
	}{
		{code: 400},
		{code: 401, unauthorized: true},
		{code: 403, unauthorized: true},
		{code: 404, notFound: true},
		{code: 429, rateLimited: true},
		{code: 500, serverFailure: true},
		{code: 503, serverFailure: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("code %d", tt.code), func(t *testing.T) {
			err := &APIError{Code: tt.code, Message: "m"}
			assert.Equal(t, tt.notFound, err.IsNotFound())
			assert.Equal(t, tt.unauthorized, err.IsUnauthorized())
			assert.Equal(t, tt.rateLimited, err.IsRateLimited())
			assert.Equal(t, tt.serverFailure, err.IsServerError())
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Code: 404, Message: "profile not found"}
	assert.Equal(t, "royale API error: status 404: profile not found", err.Error())
}

// The default transport's failure message must satisfy the extraction
// grammar so that custom transports wrapping it still translate losslessly.
func TestHTTPErrorMessageCarriesCode(t *testing.T) {
	err := &HTTPError{Status: 418, URL: "http://api.cr-api.com/clan/X"}

	code, ok := ParseStatusCode(err.Error())
	require.True(t, ok, "HTTPError message must end in its status code")
	assert.Equal(t, 418, code)
}

func TestTranslateTransportError(t *testing.T) {
	t.Run("api error passes through unchanged", func(t *testing.T) {
		original := &APIError{Code: 503, Message: "maintenance"}

		translated := translateTransportError(original)

		assert.Same(t, original, translated)
	})

	t.Run("http error becomes api error", func(t *testing.T) {
		translated := translateTransportError(&HTTPError{
			Status: 404,
			URL:    "http://api.cr-api.com/profile/X",
			Body:   `{"error":true,"message":"not found"}`,
		})

		var apiErr *APIError
		require.ErrorAs(t, translated, &apiErr)
		assert.Equal(t, 404, apiErr.Code)
		assert.Contains(t, apiErr.Message, "not found")
	})

	t.Run("http error without body uses status text", func(t *testing.T) {
		translated := translateTransportError(&HTTPError{Status: 429, URL: "http://x"})

		var apiErr *APIError
		require.ErrorAs(t, translated, &apiErr)
		assert.Equal(t, 429, apiErr.Code)
		assert.Equal(t, "Too Many Requests", apiErr.Message)
	})

	t.Run("wrapped http error is still typed", func(t *testing.T) {
		wrapped := fmt.Errorf("fetching clan: %w", &HTTPError{Status: 500, URL: "http://x"})

		translated := translateTransportError(wrapped)

		var apiErr *APIError
		require.ErrorAs(t, translated, &apiErr)
		assert.Equal(t, 500, apiErr.Code)
	})

	t.Run("message grammar fallback", func(t *testing.T) {
		translated := translateTransportError(errors.New("upstream call failed: 400"))

		var apiErr *APIError
		require.ErrorAs(t, translated, &apiErr)
		assert.Equal(t, 400, apiErr.Code)
		assert.Equal(t, "upstream call failed: 400", apiErr.Message)
	})

	t.Run("wrapped message keeps trailing code", func(t *testing.T) {
		inner := errors.New("status: 403")
		wrapped := fmt.Errorf("refreshing roster: %w", inner)

		translated := translateTransportError(wrapped)

		var apiErr *APIError
		require.ErrorAs(t, translated, &apiErr)
		assert.Equal(t, 403, apiErr.Code)
	})

	t.Run("codeless failure stays a transport error", func(t *testing.T) {
		original := errors.New("dial tcp: connection refused")

		translated := translateTransportError(original)

		var transportErr *TransportError
		require.ErrorAs(t, translated, &transportErr)
		assert.ErrorIs(t, translated, original, "the cause must stay reachable")

		var apiErr *APIError
		assert.False(t, errors.As(translated, &apiErr), "no status code may be invented")
	})
}
