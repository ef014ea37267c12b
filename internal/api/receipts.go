package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// GetReceipts lists the most recent receipts. A non-positive limit falls
// back to DefaultReceiptLimit.
func (c *Client) GetReceipts(ctx context.Context, limit int) ([]models.Receipt, error) {
	if limit <= 0 {
		limit = DefaultReceiptLimit
	}
	endpoint := fmt.Sprintf("%s?limit=%d", endpointReceipts, limit)
	return doJSON[[]models.Receipt](ctx, c, http.MethodGet, endpoint, nil)
}

// GetReceipt fetches a single receipt by id.
func (c *Client) GetReceipt(ctx context.Context, id string) (models.Receipt, error) {
	endpoint := endpointReceipts + "/" + url.PathEscape(id)
	return doJSON[models.Receipt](ctx, c, http.MethodGet, endpoint, nil)
}

// UpdateReceipt sends the supplied fields as the whole body. Replace
// semantics are the backend's; the client does not negotiate patching.
func (c *Client) UpdateReceipt(ctx context.Context, id string, update models.ReceiptUpdate) (models.Receipt, error) {
	endpoint := endpointReceipts + "/" + url.PathEscape(id)
	return doJSON[models.Receipt](ctx, c, http.MethodPut, endpoint, update)
}

// DeleteReceipt removes a receipt on the backend.
func (c *Client) DeleteReceipt(ctx context.Context, id string) error {
	endpoint := endpointReceipts + "/" + url.PathEscape(id)
	return c.doVoid(ctx, http.MethodDelete, endpoint, nil)
}

// UploadReceipt sends a receipt image as multipart form data under the
// field name "receipt" and returns the OCR-extracted receipt. The JSON
// content-type header is deliberately omitted so the multipart boundary is
// set by the writer. On a non-success status the error message carries no
// status detail; callers needing the code can unwrap to *Error.
func (c *Client) UploadReceipt(ctx context.Context, filename string, image io.Reader) (models.Receipt, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("receipt", filepath.Base(filename))
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return models.Receipt{}, fmt.Errorf("failed to write receipt image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return models.Receipt{}, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpointUpload, &body)
	if err != nil {
		return models.Receipt{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	c.count(ctx, http.MethodPost, resp)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to upload receipt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.Receipt{}, &Error{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    "failed to upload receipt",
		}
	}

	var receipt models.Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return models.Receipt{}, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return receipt, nil
}
