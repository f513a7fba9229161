package relayclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/avast/retry-go"
	"github.com/phrazzld/ask-relay/internal/api"
	"github.com/phrazzld/ask-relay/internal/api/shared"
	"resty.dev/v3"
)

// DefaultBaseURL is where a locally started relay listens.
const DefaultBaseURL = "http://localhost:5000"

// Config configures a Client.
type Config struct {
	// BaseURL is the relay's root URL, e.g. http://192.168.1.10:5000.
	BaseURL string

	// Timeout bounds each HTTP attempt. Zero means no timeout, which suits
	// slow model answers.
	Timeout time.Duration

	// Retries is the number of extra attempts made when the relay cannot be
	// reached. Requests that were sent are never retried, whatever the outcome.
	Retries uint

	// RetryDelay is the base delay for exponential backoff between attempts.
	RetryDelay time.Duration
}

// APIError is returned when the relay answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("relay returned %d: %s", e.StatusCode, e.Message)
}

// ErrUnexpectedResponse is returned when a 2xx body does not match the
// relay's contract.
var ErrUnexpectedResponse = errors.New("unexpected response from relay")

// Client talks to a relay server.
type Client struct {
	httpClient *resty.Client
	retries    uint
	retryDelay time.Duration
}

// New creates a Client for cfg.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetResponseBodyUnlimitedReads(true)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 200 * time.Millisecond
	}

	return &Client{
		httpClient: client,
		retries:    cfg.Retries,
		retryDelay: retryDelay,
	}
}

// Close releases the client's idle connections.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Status calls GET /.
func (c *Client) Status(ctx context.Context) (*api.StatusResponse, error) {
	var result *api.StatusResponse
	err := c.do(ctx, func() error {
		response, err := c.httpClient.R().
			SetContext(ctx).
			SetResult(&api.StatusResponse{}).
			SetError(&shared.ErrorResponse{}).
			Get("/")
		if err != nil {
			return retryable(err)
		}
		if err := apiError(response); err != nil {
			return retry.Unrecoverable(err)
		}

		body, ok := response.Result().(*api.StatusResponse)
		if !ok || body == nil || body.Status == "" {
			return retry.Unrecoverable(fmt.Errorf("%w: %s", ErrUnexpectedResponse, response.String()))
		}
		result = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Ask calls POST /ask with question and returns the relay's answer.
func (c *Client) Ask(ctx context.Context, question string) (*api.AskResponse, error) {
	var result *api.AskResponse
	err := c.do(ctx, func() error {
		response, err := c.httpClient.R().
			SetContext(ctx).
			SetBody(map[string]string{"question": question}).
			SetResult(&api.AskResponse{}).
			SetError(&shared.ErrorResponse{}).
			Post("/ask")
		if err != nil {
			return retryable(err)
		}
		if err := apiError(response); err != nil {
			return retry.Unrecoverable(err)
		}

		body, ok := response.Result().(*api.AskResponse)
		if !ok || body == nil || !body.Success {
			return retry.Unrecoverable(fmt.Errorf("%w: %s", ErrUnexpectedResponse, response.String()))
		}
		result = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// do runs fn, retrying connection failures with exponential backoff.
func (c *Client) do(ctx context.Context, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(c.retries+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Debug("retrying relay request",
				"attempt", n+1,
				"error", err)
		}),
	)
}

// retryable marks err as worth another attempt only when the connection to
// the relay could not be established. Once a request has been sent the relay
// may already be asking the model, so any later failure is final.
func retryable(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return err
	}
	return retry.Unrecoverable(err)
}

// apiError converts an error response into an *APIError, or returns nil.
func apiError(response *resty.Response) error {
	if !response.IsError() {
		return nil
	}

	message := response.String()
	if body, ok := response.Error().(*shared.ErrorResponse); ok && body != nil && body.Error != "" {
		message = body.Error
	}
	return &APIError{StatusCode: response.StatusCode(), Message: message}
}
