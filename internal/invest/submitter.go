package invest

import (
	"context"
	"fmt"
	"time"

	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/pkg/logger"
)

// Gateway is the slice of the remote API the submission flow needs.
type Gateway interface {
	CreateInvestment(ctx context.Context, walletID string, payload investapi.InvestmentPayload) (*investapi.Investment, error)
	UpdateWallet(ctx context.Context, id string, input investapi.UpdateWalletInput) (*investapi.Wallet, error)
	GetWallet(ctx context.Context, id string) (*investapi.Wallet, error)
}

// Result is a committed submission: the created investment and the wallet as
// the server now sees it.
type Result struct {
	Investment *investapi.Investment
	Wallet     *investapi.Wallet
}

// Submitter validates drafts and commits them.
type Submitter struct {
	gateway Gateway
	logger  *logger.Logger
	now     func() time.Time
}

// NewSubmitter creates a submitter backed by the given gateway.
func NewSubmitter(gateway Gateway, log *logger.Logger) *Submitter {
	return &Submitter{
		gateway: gateway,
		logger:  log.WithField("component", "invest"),
		now:     time.Now,
	}
}

// Validate checks a draft. Rules short-circuit: the first failing rule wins
// and produces the single message shown on the form. No network call happens
// here.
func (s *Submitter) Validate(d *Draft) *ValidationError {
	if d.Wallet == nil {
		return &ValidationError{Code: CodeNoWallet, Message: "Selecione uma carteira"}
	}
	if !d.Type.IsValid() || (d.Type == investapi.InvestmentTypeDebtSettlement && !d.Company.Debt) {
		return &ValidationError{Code: CodeInvalidType, Message: "Tipo de investimento inválido"}
	}

	if d.Amount < d.Company.UnitPrice {
		return &ValidationError{
			Code:    CodeBelowMinimum,
			Message: fmt.Sprintf("O valor mínimo para investir é %s", d.Company.UnitPrice.Format()),
		}
	}
	if d.Type == investapi.InvestmentTypeDebtSettlement && d.Amount < d.Company.DebtValue {
		return &ValidationError{
			Code:    CodeDebtNotCovered,
			Message: fmt.Sprintf("O valor do investimento deve ser maior ou igual à dívida de %s", d.Company.DebtValue.Format()),
		}
	}
	if d.Amount <= 0 {
		return &ValidationError{Code: CodeInvalidAmount, Message: "Valor inválido"}
	}
	if d.Amount > d.Wallet.Balance {
		return &ValidationError{Code: CodeInsufficientBalance, Message: "Saldo insuficiente na carteira"}
	}
	return nil
}

// Submit validates the draft and commits it: first the investment record is
// created, then the wallet balance is updated. The sequence is ordered but
// not transactional — there is no rollback of the created investment when the
// balance update fails; the API accepts that gap and so does this client.
func (s *Submitter) Submit(ctx context.Context, d *Draft) (*Result, error) {
	if verr := s.Validate(d); verr != nil {
		return nil, verr
	}

	payload := investapi.InvestmentPayload{
		Name:          d.Company.Name,
		Amount:        d.Amount,
		UnitPrice:     d.Company.UnitPrice,
		WalletID:      d.Wallet.ID,
		PurchaseDate:  s.now(),
		Risk:          investapi.RiskLabel(d.Company.Risk),
		Profitability: d.profitability,
		CompanyID:     d.Company.ID,
		Type:          d.Type,
	}

	investment, err := s.gateway.CreateInvestment(ctx, d.Wallet.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	newBalance := d.Wallet.Balance - d.Amount
	wallet, err := s.gateway.UpdateWallet(ctx, d.Wallet.ID, investapi.UpdateWalletInput{
		Name:    d.Wallet.Name,
		Balance: newBalance,
	})
	if err != nil {
		// The investment already exists upstream; the balance was not
		// debited. Reported, not compensated.
		s.logger.Error("wallet update failed after investment creation",
			"wallet_id", d.Wallet.ID,
			"investment_id", investment.ID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to update wallet balance: %w", err)
	}

	// Prefer the server's view of the wallet; re-fetch when the update
	// answered with no body. Only if that also fails fall back to the local
	// echo of the subtraction.
	if wallet == nil {
		wallet, err = s.gateway.GetWallet(ctx, d.Wallet.ID)
		if err != nil {
			s.logger.Warn("wallet re-fetch failed, using local balance echo",
				"wallet_id", d.Wallet.ID,
				"error", err,
			)
			echo := *d.Wallet
			echo.Balance = newBalance
			wallet = &echo
		}
	}

	s.logger.Info("investment committed",
		"wallet_id", d.Wallet.ID,
		"company_id", d.Company.ID,
		"investment_id", investment.ID,
		"amount", int64(d.Amount),
		"type", string(d.Type),
	)

	return &Result{Investment: investment, Wallet: wallet}, nil
}
