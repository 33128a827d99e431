package investapi

import (
	"context"
	"net/http"

	"github.com/investa-app/webclient/pkg/money"
)

// CreateWalletInput is the payload for creating a wallet.
type CreateWalletInput struct {
	Name        string         `json:"name"`
	Balance     money.Centavos `json:"balance"`
	SpentAmount money.Centavos `json:"spentAmount"`
	FundsAdded  money.Centavos `json:"fundsAdded"`
}

// UpdateWalletInput carries the wallet's name and the new balance; the API
// expects both on every update.
type UpdateWalletInput struct {
	Name    string         `json:"name"`
	Balance money.Centavos `json:"balance"`
}

// ListWallets fetches every wallet of the signed-in user, investments included.
func (c *Client) ListWallets(ctx context.Context) ([]Wallet, error) {
	var wallets []Wallet
	if err := c.doJSON(ctx, http.MethodGet, "/wallet", nil, &wallets, true); err != nil {
		return nil, err
	}
	return wallets, nil
}

// GetWallet fetches one wallet by id.
func (c *Client) GetWallet(ctx context.Context, id string) (*Wallet, error) {
	var wallet Wallet
	if err := c.doJSON(ctx, http.MethodGet, "/wallet/"+id, nil, &wallet, true); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// CreateWallet creates a new wallet.
func (c *Client) CreateWallet(ctx context.Context, input CreateWalletInput) (*Wallet, error) {
	var wallet Wallet
	if err := c.doJSON(ctx, http.MethodPost, "/wallet", input, &wallet, true); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// UpdateWallet updates a wallet's name and balance. The returned wallet is
// the server's view; it may be nil when the API answers with an empty body.
func (c *Client) UpdateWallet(ctx context.Context, id string, input UpdateWalletInput) (*Wallet, error) {
	var wallet Wallet
	if err := c.doJSON(ctx, http.MethodPut, "/wallet/"+id, input, &wallet, true); err != nil {
		return nil, err
	}
	if wallet.ID == "" {
		return nil, nil
	}
	return &wallet, nil
}

// DeleteWallet removes a wallet.
func (c *Client) DeleteWallet(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/wallet/"+id, nil, nil, true)
}

// WalletInvestments fetches the investments recorded against a wallet.
func (c *Client) WalletInvestments(ctx context.Context, walletID string) ([]Investment, error) {
	var investments []Investment
	if err := c.doJSON(ctx, http.MethodGet, "/wallet/"+walletID+"/investments", nil, &investments, true); err != nil {
		return nil, err
	}
	return investments, nil
}
