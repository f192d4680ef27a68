package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/filedeck/filedeck/internal/client/models"
	"github.com/filedeck/filedeck/internal/common"
	"github.com/filedeck/filedeck/internal/logging"
)

// HTTPClient implements Client over the file service's REST API.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	session string
	log     logging.Logger
}

// NewInstrumentedHTTPClient returns an http.Client whose transport records
// OpenTelemetry spans for every request. Shared by the service client and
// the dimension prober so all outbound traffic is traced uniformly.
func NewInstrumentedHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewHTTPClient builds a Client for the file service at baseURL. Pass nil
// httpc to get a default instrumented client with a 30s timeout.
func NewHTTPClient(baseURL string, httpc *http.Client, log logging.Logger) *HTTPClient {
	if httpc == nil {
		httpc = NewInstrumentedHTTPClient(30 * time.Second)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		session: uuid.NewString(),
		log:     log,
	}
}

func (c *HTTPClient) ListFiles(ctx context.Context, offset, limit int) (ListResult, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	var out ListResult
	if err := c.doJSON(ctx, http.MethodGet, "/api/files?"+q.Encode(), nil, "", &out); err != nil {
		return ListResult{}, fmt.Errorf("listing files: %w", err)
	}
	return out, nil
}

// uploadResponse tolerates both wire shapes the service is known to emit:
// a single object under "file" or an array under "files".
type uploadResponse struct {
	File  *models.RawFile  `json:"file"`
	Files []models.RawFile `json:"files"`
}

func (c *HTTPClient) UploadRaw(ctx context.Context, name, contentType string, body io.Reader, size int64, visibility string) (models.RawFile, error) {
	q := url.Values{}
	q.Set("filename", name)
	if visibility != "" {
		q.Set("visibility", visibility)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/files?"+q.Encode(), body)
	if err != nil {
		return models.RawFile{}, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(common.SessionIDHeaderName, c.session)
	if size > 0 {
		req.ContentLength = size
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return models.RawFile{}, fmt.Errorf("uploading %s: %w", name, wrapTransportErr(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return models.RawFile{}, fmt.Errorf("uploading %s: %w", name, responseError(resp))
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return models.RawFile{}, fmt.Errorf("decoding upload response: %w", err)
	}
	switch {
	case ur.File != nil:
		return *ur.File, nil
	case len(ur.Files) > 0:
		return ur.Files[0], nil
	default:
		return models.RawFile{}, fmt.Errorf("%w: upload response carried no file", common.ErrUnknown)
	}
}

func (c *HTTPClient) DeleteFile(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/files/"+url.PathEscape(id), nil, "", nil); err != nil {
		return fmt.Errorf("deleting file %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) UpdateVisibility(ctx context.Context, id, visibility string) error {
	payload := map[string]string{"visibility": visibility}
	if err := c.doJSON(ctx, http.MethodPatch, "/api/files/"+url.PathEscape(id)+"/visibility", payload, "application/json", nil); err != nil {
		return fmt.Errorf("updating visibility of %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) UpdateMetadata(ctx context.Context, id string, metadata map[string]any) error {
	if err := c.doJSON(ctx, http.MethodPatch, "/api/files/"+url.PathEscape(id)+"/metadata", metadata, "application/json", nil); err != nil {
		return fmt.Errorf("updating metadata of %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) LinkToEntity(ctx context.Context, id string, link EntityLink) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/files/"+url.PathEscape(id)+"/links", link, "application/json", nil); err != nil {
		return fmt.Errorf("linking file %s: %w", id, err)
	}
	return nil
}

// DownloadURL resolves the content URL for a file or one of its variants.
// No network call is made; the display layer fetches the URL itself.
func (c *HTTPClient) DownloadURL(id, variant string) string {
	u := c.baseURL + "/api/files/" + url.PathEscape(id) + "/content"
	if variant != "" {
		u += "?variant=" + url.QueryEscape(variant)
	}
	return u
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/healthz", nil, "", nil); err != nil {
		return fmt.Errorf("pinging file service: %w", err)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload any, contentType string, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(common.SessionIDHeaderName, c.session)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return wrapTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorBody is the service's error envelope. Plain-text bodies are used
// verbatim when the envelope does not parse.
type errorBody struct {
	Error string `json:"error"`
}

func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	msg := strings.TrimSpace(string(raw))
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
		msg = eb.Error
	}

	return statusError(resp.StatusCode, msg)
}

func wrapTransportErr(err error) error {
	return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
}
