package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/kurochkinivan/docx_converter/internal/domain"
)

const (
	uploadPath = "upload"
	fileField  = "file"
)

// ErrTransport marks failures where no usable response came back.
var ErrTransport = errors.New("converter is unreachable")

// ServerError is a non-2xx answer of the conversion service.
// Message is empty when the body carried no error field.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("converter responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("converter responded with status %d: %s", e.StatusCode, e.Message)
}

type errorResponse struct {
	Error string `json:"error"`
}

type Client struct {
	log        *slog.Logger
	baseURL    string
	httpClient *http.Client
}

func NewClient(log *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		log:        log,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Convert posts the document to <baseURL>/upload and returns the response body as is.
func (c *Client) Convert(ctx context.Context, doc *domain.Document) ([]byte, error) {
	endpoint, err := url.JoinPath(c.baseURL, uploadPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload url: %w", err)
	}

	body, contentType, err := encodeDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	c.log.DebugContext(ctx, "sending document to converter",
		slog.String("url", endpoint),
		slog.String("filename", doc.Name),
		slog.Int64("size", doc.Size()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeServerError(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	return content, nil
}

func encodeDocument(doc *domain.Document) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(fileField, doc.Name)
	if err != nil {
		return nil, "", err
	}

	if _, err := part.Write(doc.Content); err != nil {
		return nil, "", err
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return &buf, mw.FormDataContentType(), nil
}

func decodeServerError(resp *http.Response) error {
	serverErr := &ServerError{StatusCode: resp.StatusCode}

	var payload errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		serverErr.Message = payload.Error
	}

	return serverErr
}
