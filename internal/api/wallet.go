package api

import (
	"context"
	"net/http"
	"net/url"

	"gitlab.com/thuraaung/receipt-wallet/internal/models"
)

// CreateWalletPass requests issuance of a wallet pass for a saved receipt.
func (c *Client) CreateWalletPass(ctx context.Context, receiptID string) (models.WalletPass, error) {
	body := map[string]string{"receiptId": receiptID}
	return doJSON[models.WalletPass](ctx, c, http.MethodPost, endpointWalletPasses, body)
}

// GetWalletPasses lists all wallet passes.
func (c *Client) GetWalletPasses(ctx context.Context) ([]models.WalletPass, error) {
	return doJSON[[]models.WalletPass](ctx, c, http.MethodGet, endpointWalletPasses, nil)
}

// UpdateWalletPass updates an issued pass. There is no delete; passes are
// archived through a status update instead.
func (c *Client) UpdateWalletPass(ctx context.Context, id string, update models.WalletPassUpdate) (models.WalletPass, error) {
	endpoint := endpointWalletPasses + "/" + url.PathEscape(id)
	return doJSON[models.WalletPass](ctx, c, http.MethodPut, endpoint, update)
}
