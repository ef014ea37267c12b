package pages

import (
	"context"
	"io"

	"github.com/google/uuid"

	"gitlab.com/thuraaung/receipt-wallet/internal/api"
	"gitlab.com/thuraaung/receipt-wallet/internal/demo"
	"gitlab.com/thuraaung/receipt-wallet/internal/logger"
	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// Upload drives the receipt-capture flow: OCR extraction, user edits, then
// a best-effort save that never blocks the success path.
type Upload struct {
	api *api.Client
}

// NewUpload creates the upload controller.
func NewUpload(client *api.Client) *Upload {
	return &Upload{api: client}
}

// ProcessResult holds the extracted receipt after upload. FromDemo marks an
// extraction replaced by the demo fallback because the backend call failed;
// the record then carries a temp- id and cannot be updated remotely.
type ProcessResult struct {
	Receipt    models.Receipt
	FromDemo   bool
	ProcessErr error
}

// Process uploads the image for OCR extraction. On failure the page still
// presents an editable demo extraction rather than an empty form.
func (u *Upload) Process(ctx context.Context, filename string, image io.Reader) ProcessResult {
	receipt, err := u.api.UploadReceipt(ctx, filename, image)
	if err != nil {
		logger.Log.Warn().Err(err).Str("file", filename).Msg("Receipt processing failed, using demo extraction")
		return ProcessResult{
			Receipt:    demo.ExtractedReceipt(uuid.NewString(), filename),
			FromDemo:   true,
			ProcessErr: err,
		}
	}
	return ProcessResult{Receipt: receipt}
}

// SaveResult records the outcome of the best-effort save step. Saved is
// always true: persistence failures are logged and swallowed so the user
// still reaches the success route.
type SaveResult struct {
	Saved   bool
	Pass    *models.WalletPass
	SaveErr error
	PassErr error
}

// Save persists the user-edited receipt when it has a durable id, then
// requests wallet-pass creation. Both calls are best-effort.
func (u *Upload) Save(ctx context.Context, receipt models.Receipt) SaveResult {
	result := SaveResult{Saved: true}

	if receipt.HasDurableID() {
		update := models.ReceiptUpdate{
			Merchant: &receipt.Merchant,
			Date:     &receipt.Date,
			Total:    &receipt.Total,
			Category: &receipt.Category,
			Items:    receipt.Items,
		}
		if _, err := u.api.UpdateReceipt(ctx, receipt.ID, update); err != nil {
			logger.Log.Warn().Err(err).Str("receipt_id", receipt.ID).Msg("Failed to save receipt edits")
			result.SaveErr = err
		}
	}

	passID := receipt.ID
	if passID == "" {
		passID = "temp"
	}
	pass, err := u.api.CreateWalletPass(ctx, passID)
	if err != nil {
		logger.Log.Warn().Err(err).Str("receipt_id", passID).Msg("Failed to create wallet pass")
		result.PassErr = err
		return result
	}

	result.Pass = &pass
	return result
}
