// Package invest implements the investment submission flow: validating a
// proposed trade against the selected company and wallet, then committing it
// through the remote API's two-call sequence.
package invest

import (
	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/pkg/money"
)

// Draft is the ephemeral state of one submission form. It exists only for
// the duration of the interaction and is discarded on cancel with no side
// effects.
type Draft struct {
	Company investapi.Company
	// Wallet is the wallet resolved from the previously fetched set; nil
	// until the selection resolves, which gates submission.
	Wallet   *investapi.Wallet
	Type     investapi.InvestmentType
	Quantity int
	Amount   money.Centavos

	// profitability is captured once when the draft opens, not re-read on
	// submit.
	profitability float64
}

// NewDraft opens a draft for a company. The type starts as a share purchase,
// the only type every company supports.
func NewDraft(company investapi.Company, wallet *investapi.Wallet) *Draft {
	return &Draft{
		Company:       company,
		Wallet:        wallet,
		Type:          investapi.InvestmentTypeShare,
		profitability: company.Profitability,
	}
}

// SetQuantity sets the share quantity and derives the amount from it.
// Quantity is the driver in share-purchase mode: this overwrites any manual
// edit to the amount field.
func (d *Draft) SetQuantity(q int) {
	if q < 0 {
		q = 0
	}
	d.Quantity = q
	d.Amount = money.Centavos(int64(q)) * d.Company.UnitPrice
}

// SetAmountInput reads a typed amount. Direct edits are only meaningful in
// debt-settlement mode; share-purchase mode derives the amount from quantity.
func (d *Draft) SetAmountInput(input string) {
	d.Amount = money.Parse(input)
}

// AmountDisplay is the formatted value shown in the amount field.
func (d *Draft) AmountDisplay() string {
	return d.Amount.Format()
}
