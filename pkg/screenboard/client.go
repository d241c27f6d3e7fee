package screenboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"screenboard-client/pkg/errs"
	"screenboard-client/pkg/screenboard/widgets"
)

// DefaultAPIURL is the production screenboard endpoint.
const DefaultAPIURL = "https://app.datadoghq.com/api/v1/screen"

const defaultTimeout = 10 * time.Second

type Client struct {
	applicationKey string
	apiKey         string
	apiURL         string
	httpClient     *http.Client
	logger         *zap.Logger
}

// Option configures a Client at construction time.
type Option func(*Client) error

// WithHTTPClient replaces the default transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		return c.SetHTTPClient(httpClient)
	}
}

// WithAPIURL points the client at an endpoint other than DefaultAPIURL.
func WithAPIURL(apiURL string) Option {
	return func(c *Client) error {
		return c.SetAPIURL(apiURL)
	}
}

// WithTimeout adjusts the timeout of the client's current transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout <= 0 {
			return errs.NewInvalidArgument("timeout")
		}
		c.httpClient.Timeout = timeout
		return nil
	}
}

// WithLogger attaches a logger; the client is silent without one.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return errs.NewInvalidArgument("logger")
		}
		c.logger = logger
		return nil
	}
}

// New builds a screenboard client from the credential pair.
func New(applicationKey, apiKey string, opts ...Option) (*Client, error) {
	if applicationKey == "" {
		return nil, errs.NewInvalidArgument("application key")
	}
	if apiKey == "" {
		return nil, errs.NewInvalidArgument("api key")
	}
	c := &Client{
		applicationKey: applicationKey,
		apiKey:         apiKey,
		apiURL:         DefaultAPIURL,
		httpClient:     &http.Client{Timeout: defaultTimeout},
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetAPIURL retargets every subsequent operation. Not synchronized; don't
// call it while operations are in flight on other goroutines.
func (c *Client) SetAPIURL(apiURL string) error {
	if apiURL == "" {
		return errs.NewInvalidArgument("api url")
	}
	if _, err := url.Parse(apiURL); err != nil {
		return err
	}
	c.apiURL = apiURL
	return nil
}

func (c *Client) APIURL() string {
	return c.apiURL
}

func (c *Client) SetHTTPClient(httpClient *http.Client) error {
	if httpClient == nil {
		return errs.NewInvalidArgument("http client")
	}
	c.httpClient = httpClient
	return nil
}

// boardResponse is the {id, board, errors} envelope the mutating endpoints
// return.
type boardResponse struct {
	ID     int            `json:"id"`
	Board  *widgets.Board `json:"board"`
	Errors []string       `json:"errors"`
}

// urlResponse comes back from the share endpoint.
type urlResponse struct {
	ID        int      `json:"id"`
	PublicURL string   `json:"public_url"`
	Errors    []string `json:"errors"`
}

// Create persists a new board and returns the id datadog assigned to it.
// Unlike the other operations Create does not consult the envelope error
// list: datadog reports create failures through the response status.
func (c *Client) Create(ctx context.Context, board *widgets.Board) (int, error) {
	if board == nil {
		return 0, errs.NewInvalidArgument("board")
	}
	c.logger.Debug("creating screenboard", zap.String("title", board.Title))

	var resp boardResponse
	if err := c.do(ctx, http.MethodPost, board, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Update replaces the board stored under id.
func (c *Client) Update(ctx context.Context, id int, board *widgets.Board) error {
	if board == nil {
		return errs.NewInvalidArgument("board")
	}
	c.logger.Debug("updating screenboard", zap.Int("id", id))

	var resp boardResponse
	err := c.do(ctx, http.MethodPut, board, &resp, strconv.Itoa(id))
	if len(resp.Errors) > 0 {
		return errs.NewRemoteRejection(resp.Errors)
	}
	return err
}

// Delete removes the board stored under id.
func (c *Client) Delete(ctx context.Context, id int) error {
	c.logger.Debug("deleting screenboard", zap.Int("id", id))

	var resp boardResponse
	err := c.do(ctx, http.MethodDelete, nil, &resp, strconv.Itoa(id))
	if len(resp.Errors) > 0 {
		return errs.NewRemoteRejection(resp.Errors)
	}
	return err
}

// Get fetches the board stored under id as a disconnected snapshot; mutating
// it has no effect on the remote board until it is sent back via Update.
func (c *Client) Get(ctx context.Context, id int) (*widgets.Board, error) {
	c.logger.Debug("fetching screenboard", zap.Int("id", id))

	var board *widgets.Board
	if err := c.do(ctx, http.MethodGet, nil, &board, strconv.Itoa(id)); err != nil {
		return nil, err
	}
	if board == nil {
		return nil, errs.NewNotFound(id)
	}
	return board, nil
}

// GetPublicURL returns a link that shows the board to anyone in a browser,
// no datadog account required.
func (c *Client) GetPublicURL(ctx context.Context, id int) (string, error) {
	c.logger.Debug("sharing screenboard", zap.Int("id", id))

	var resp urlResponse
	err := c.do(ctx, http.MethodGet, nil, &resp, "share", strconv.Itoa(id))
	if len(resp.Errors) > 0 {
		return "", errs.NewRemoteRejection(resp.Errors)
	}
	if err != nil {
		return "", err
	}
	return resp.PublicURL, nil
}

// do runs one blocking round-trip against the api url joined with path. The
// response body is decoded into out even on a non-2xx status so the callers
// can surface server-reported envelope errors; a non-2xx status without a
// decodable body comes back as a StatusCodeError.
func (c *Client) do(ctx context.Context, method string, body, out any, path ...string) error {
	endpoint, requestURL, err := c.requestURL(path...)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("error closing body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if len(data) > 0 && out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			if !ok {
				return &errs.StatusCodeError{StatusCode: resp.StatusCode, URL: endpoint}
			}
			return err
		}
	}
	if !ok {
		return &errs.StatusCodeError{StatusCode: resp.StatusCode, URL: endpoint}
	}
	return nil
}

// requestURL joins path segments onto the api url and attaches both
// credential tokens. The first return value is the endpoint without the
// query string, safe for logs and errors.
func (c *Client) requestURL(path ...string) (string, string, error) {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return "", "", err
	}
	if len(path) > 0 {
		u = u.JoinPath(path...)
	}
	endpoint := u.String()

	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("application_key", c.applicationKey)
	u.RawQuery = q.Encode()
	return endpoint, u.String(), nil
}
