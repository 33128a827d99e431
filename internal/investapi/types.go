package investapi

import (
	"encoding/json"
	"time"

	"github.com/investa-app/webclient/pkg/money"
)

// InvestmentType is the kind of investment the API records. The wire values
// are the API's Portuguese identifiers.
type InvestmentType string

const (
	// InvestmentTypeShare is a share purchase ("ação").
	InvestmentTypeShare InvestmentType = "acao"
	// InvestmentTypeDebtSettlement settles a company's outstanding debt in
	// full ("quitação de dívida").
	InvestmentTypeDebtSettlement InvestmentType = "quitacao"
)

// IsValid checks if the investment type is one the API accepts
func (t InvestmentType) IsValid() bool {
	return t == InvestmentTypeShare || t == InvestmentTypeDebtSettlement
}

// Risk is a decoded risk descriptor: a display label plus a numeric weight.
type Risk struct {
	Label  string `json:"label"`
	Weight int    `json:"value"`
}

// ParseRisk decodes the API's encoded risk string. The API transmits risk as
// a JSON document inside a string field; an empty or undecodable value means
// the company carries no risk descriptor and yields nil.
func ParseRisk(encoded string) *Risk {
	if encoded == "" {
		return nil
	}
	var r Risk
	if err := json.Unmarshal([]byte(encoded), &r); err != nil {
		return nil
	}
	return &r
}

// RiskLabel returns the label shown for a possibly-absent risk descriptor.
func RiskLabel(r *Risk) string {
	if r == nil || r.Label == "" {
		return "N/A"
	}
	return r.Label
}

// Company is an investable company from the catalog.
type Company struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Sector        string         `json:"sector"`
	Stage         string         `json:"stage"`
	UnitPrice     money.Centavos `json:"unitPrice"`
	Valuation     money.Centavos `json:"valuation"`
	Profitability float64        `json:"profitability"`
	Debt          bool           `json:"debt"`
	DebtValue     money.Centavos `json:"debtValue"`

	// Risk is decoded once at the API boundary; nil when absent.
	Risk *Risk `json:"-"`
}

// companyWire is the raw catalog document, risk still encoded.
type companyWire struct {
	Company
	Risk string `json:"risk"`
}

func (w companyWire) decode() Company {
	c := w.Company
	c.Risk = ParseRisk(w.Risk)
	return c
}

// Wallet is a user-owned cash balance. The balance here is a transient copy;
// the authoritative value always comes from the next fetch.
type Wallet struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Balance     money.Centavos `json:"balance"`
	SpentAmount money.Centavos `json:"spentAmount"`
	FundsAdded  money.Centavos `json:"fundsAdded"`
	Investments []Investment   `json:"investments"`
}

// Investment is a ledger record linking a wallet to a company purchase or
// debt settlement. Immutable from the client's perspective once created.
type Investment struct {
	ID            string         `json:"id"`
	WalletID      string         `json:"walletId"`
	CompanyID     string         `json:"companyId"`
	Name          string         `json:"name"`
	Amount        money.Centavos `json:"amount"`
	UnitPrice     money.Centavos `json:"unitPrice"`
	Risk          string         `json:"risk"`
	Profitability float64        `json:"profitability"`
	Type          InvestmentType `json:"type"`
	PurchaseDate  time.Time      `json:"purchaseDate"`
}

// User is the authenticated user's profile.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
