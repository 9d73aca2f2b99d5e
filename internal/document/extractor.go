package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	apperrors "finera/internal/errors"
	"finera/internal/logger"
)

// TextExtractor extracts raw text from an uploaded statement document.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, data []byte) (string, error)
}

// Client calls the external document-extraction service over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a text-extraction client for the given service endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

type extractResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// ExtractText uploads the document and returns the extracted raw text.
// Encrypted or unparseable documents surface as a document-unreadable
// error; callers bound the call through ctx.
func (c *Client) ExtractText(ctx context.Context, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "document payload is empty")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if _, err := part.Write(data); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/extract", &buf)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrDocumentUnreadable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Get().Warnw("document extraction failed",
			"filename", filename,
			"status", resp.StatusCode,
			"body", string(body),
		)
		return "", apperrors.Wrap(apperrors.ErrDocumentUnreadable,
			fmt.Errorf("extraction service returned status %d", resp.StatusCode))
	}

	var extracted extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&extracted); err != nil {
		return "", apperrors.Wrap(apperrors.ErrDocumentUnreadable, err)
	}
	if extracted.Error != "" {
		return "", apperrors.WithMessage(apperrors.ErrDocumentUnreadable, extracted.Error)
	}

	return extracted.Text, nil
}
