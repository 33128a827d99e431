package investapi

import (
	"context"
	"net/http"
	"time"

	"github.com/investa-app/webclient/pkg/money"
)

// InvestmentPayload is the document sent to record a new investment.
type InvestmentPayload struct {
	Name          string         `json:"name"`
	Amount        money.Centavos `json:"amount"`
	UnitPrice     money.Centavos `json:"unitPrice"`
	WalletID      string         `json:"walletId"`
	PurchaseDate  time.Time      `json:"purchaseDate"`
	Risk          string         `json:"risk"`
	Profitability float64        `json:"profitability"`
	CompanyID     string         `json:"companyId"`
	Type          InvestmentType `json:"type"`
}

// UpdateInvestmentInput is the patchable part of an investment record.
type UpdateInvestmentInput struct {
	Name   string          `json:"name,omitempty"`
	Amount *money.Centavos `json:"amount,omitempty"`
}

// CreateInvestment records a new investment scoped to a wallet. Note the
// distinct path prefix: investment creation lives under /wallets (plural),
// unlike the wallet CRUD routes.
func (c *Client) CreateInvestment(ctx context.Context, walletID string, payload InvestmentPayload) (*Investment, error) {
	var inv Investment
	if err := c.doJSON(ctx, http.MethodPost, "/wallets/"+walletID+"/investments", payload, &inv, true); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetInvestment fetches a single investment.
func (c *Client) GetInvestment(ctx context.Context, id string) (*Investment, error) {
	var inv Investment
	if err := c.doJSON(ctx, http.MethodGet, "/investments/"+id, nil, &inv, true); err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvestment patches an investment record.
func (c *Client) UpdateInvestment(ctx context.Context, id string, input UpdateInvestmentInput) (*Investment, error) {
	var inv Investment
	if err := c.doJSON(ctx, http.MethodPatch, "/investments/"+id, input, &inv, true); err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvestment removes an investment record.
func (c *Client) DeleteInvestment(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/investments/"+id, nil, nil, true)
}

// SellInvestment marks an investment as sold at the given price.
func (c *Client) SellInvestment(ctx context.Context, id string, sellPrice money.Centavos) (*Investment, error) {
	payload := map[string]money.Centavos{"sellPrice": sellPrice}
	var inv Investment
	if err := c.doJSON(ctx, http.MethodPatch, "/investments/"+id+"/sell", payload, &inv, true); err != nil {
		return nil, err
	}
	return &inv, nil
}

// WithdrawInvestment withdraws an investment.
func (c *Client) WithdrawInvestment(ctx context.Context, id string) (*Investment, error) {
	var inv Investment
	if err := c.doJSON(ctx, http.MethodPatch, "/investments/"+id+"/withdraw", nil, &inv, true); err != nil {
		return nil, err
	}
	return &inv, nil
}
