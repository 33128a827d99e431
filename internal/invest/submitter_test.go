package invest_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/investa-app/webclient/internal/invest"
	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/pkg/logger"
	"github.com/investa-app/webclient/pkg/money"
)

// MockGateway is a mock implementation of invest.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateInvestment(ctx context.Context, walletID string, payload investapi.InvestmentPayload) (*investapi.Investment, error) {
	args := m.Called(ctx, walletID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*investapi.Investment), args.Error(1)
}

func (m *MockGateway) UpdateWallet(ctx context.Context, id string, input investapi.UpdateWalletInput) (*investapi.Wallet, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*investapi.Wallet), args.Error(1)
}

func (m *MockGateway) GetWallet(ctx context.Context, id string) (*investapi.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*investapi.Wallet), args.Error(1)
}

func testLogger() *logger.Logger {
	return logger.New("test", io.Discard)
}

func acme() investapi.Company {
	return investapi.Company{
		ID:            "c1",
		Name:          "Acme",
		UnitPrice:     10000, // R$ 100,00
		Profitability: 12.5,
		Risk:          &investapi.Risk{Label: "Alto", Weight: 80},
	}
}

func mainWallet() *investapi.Wallet {
	return &investapi.Wallet{ID: "w1", Name: "Principal", Balance: 50000} // R$ 500,00
}

func TestValidate_NoWalletResolved(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), nil)
	draft.SetQuantity(1)

	_, err := sub.Submit(context.Background(), draft)
	var verr *invest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, invest.CodeNoWallet, verr.Code)
	gw.AssertExpectations(t)
}

func TestValidate_BelowUnitPrice(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet())
	draft.SetAmountInput("R$ 50,00")

	_, err := sub.Submit(context.Background(), draft)
	var verr *invest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, invest.CodeBelowMinimum, verr.Code)
	assert.Equal(t, "O valor mínimo para investir é R$ 100,00", verr.Message)
	gw.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidate_BelowUnitPriceWinsOverInsufficientBalance(t *testing.T) {
	// Both rules fail for a wallet with nothing in it; the first rule wins.
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	empty := &investapi.Wallet{ID: "w1", Name: "Vazia", Balance: 0}
	draft := invest.NewDraft(acme(), empty)
	draft.SetAmountInput("R$ 50,00")

	_, err := sub.Submit(context.Background(), draft)
	var verr *invest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, invest.CodeBelowMinimum, verr.Code)
}

func TestValidate_DebtNotCovered(t *testing.T) {
	company := acme()
	company.Debt = true
	company.DebtValue = 5000 // R$ 50,00
	company.UnitPrice = 1000 // R$ 10,00

	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(company, mainWallet())
	draft.Type = investapi.InvestmentTypeDebtSettlement
	draft.SetAmountInput("R$ 40,00")

	_, err := sub.Submit(context.Background(), draft)
	var verr *invest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, invest.CodeDebtNotCovered, verr.Code)
	assert.Equal(t, "O valor do investimento deve ser maior ou igual à dívida de R$ 50,00", verr.Message)
	gw.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidate_DebtSettlementRequiresCompanyDebt(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet()) // Acme carries no debt
	draft.Type = investapi.InvestmentTypeDebtSettlement
	draft.SetAmountInput("R$ 300,00")

	_, err := sub.Submit(context.Background(), draft)
	var verr *invest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, invest.CodeInvalidType, verr.Code)
}

func TestValidate_ZeroAmount(t *testing.T) {
	company := acme()
	company.UnitPrice = 0 // free units would pass rule 1; rule 3 still rejects

	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(company, mainWallet())

	_, err := sub.Submit(context.Background(), draft)
	var verr *invest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, invest.CodeInvalidAmount, verr.Code)
	assert.Equal(t, "Valor inválido", verr.Message)
}

func TestValidate_InsufficientBalance(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet())
	draft.SetQuantity(10) // R$ 1.000,00 against a R$ 500,00 wallet

	_, err := sub.Submit(context.Background(), draft)
	var verr *invest.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, invest.CodeInsufficientBalance, verr.Code)
	assert.Equal(t, "Saldo insuficiente na carteira", verr.Message)
	gw.AssertNotCalled(t, "CreateInvestment", mock.Anything, mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "UpdateWallet", mock.Anything, mock.Anything, mock.Anything)
}

func TestDraft_QuantityDrivesAmount(t *testing.T) {
	draft := invest.NewDraft(acme(), mainWallet())

	draft.SetAmountInput("R$ 999,99") // manual edit
	draft.SetQuantity(3)

	assert.Equal(t, money.Centavos(30000), draft.Amount)
	assert.Equal(t, "R$ 300,00", draft.AmountDisplay())

	draft.SetQuantity(5)
	assert.Equal(t, "R$ 500,00", draft.AmountDisplay())
}

func TestSubmit_SharePurchaseHappyPath(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet())
	draft.SetQuantity(3) // auto-fills R$ 300,00

	created := &investapi.Investment{ID: "inv-1", WalletID: "w1", Amount: 30000, Type: investapi.InvestmentTypeShare}
	updated := &investapi.Wallet{ID: "w1", Name: "Principal", Balance: 20000}

	gw.On("CreateInvestment", mock.Anything, "w1", mock.MatchedBy(func(p investapi.InvestmentPayload) bool {
		return p.Name == "Acme" &&
			p.Amount == 30000 &&
			p.UnitPrice == 10000 &&
			p.WalletID == "w1" &&
			p.Risk == "Alto" &&
			p.Profitability == 12.5 &&
			p.CompanyID == "c1" &&
			p.Type == investapi.InvestmentTypeShare
	})).Return(created, nil)
	gw.On("UpdateWallet", mock.Anything, "w1", investapi.UpdateWalletInput{Name: "Principal", Balance: 20000}).
		Return(updated, nil)

	result, err := sub.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "inv-1", result.Investment.ID)
	assert.Equal(t, money.Centavos(20000), result.Wallet.Balance)
	gw.AssertExpectations(t)
	gw.AssertNotCalled(t, "GetWallet", mock.Anything, mock.Anything)
}

func TestSubmit_RiskLabelDefaultsToNA(t *testing.T) {
	company := acme()
	company.Risk = nil

	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(company, mainWallet())
	draft.SetQuantity(1)

	gw.On("CreateInvestment", mock.Anything, "w1", mock.MatchedBy(func(p investapi.InvestmentPayload) bool {
		return p.Risk == "N/A"
	})).Return(&investapi.Investment{ID: "inv-2"}, nil)
	gw.On("UpdateWallet", mock.Anything, "w1", mock.Anything).
		Return(&investapi.Wallet{ID: "w1", Name: "Principal", Balance: 40000}, nil)

	_, err := sub.Submit(context.Background(), draft)
	require.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestSubmit_CreateFails_NoWalletUpdate(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet())
	draft.SetQuantity(1)

	gw.On("CreateInvestment", mock.Anything, "w1", mock.Anything).
		Return(nil, errors.New("upstream down"))

	_, err := sub.Submit(context.Background(), draft)
	require.Error(t, err)
	gw.AssertNotCalled(t, "UpdateWallet", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_WalletUpdateFails_NoCompensation(t *testing.T) {
	// The documented inconsistency: the investment exists upstream, the
	// balance was never debited, and nothing tries to roll it back.
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet())
	draft.SetQuantity(3)

	gw.On("CreateInvestment", mock.Anything, "w1", mock.Anything).
		Return(&investapi.Investment{ID: "inv-3"}, nil)
	gw.On("UpdateWallet", mock.Anything, "w1", mock.Anything).
		Return(nil, errors.New("network error"))

	_, err := sub.Submit(context.Background(), draft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update wallet balance")

	gw.AssertNumberOfCalls(t, "CreateInvestment", 1)
	gw.AssertNumberOfCalls(t, "UpdateWallet", 1)
	gw.AssertNotCalled(t, "GetWallet", mock.Anything, mock.Anything)
}

func TestSubmit_EmptyUpdateResponseTriggersRefetch(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet())
	draft.SetQuantity(3)

	fetched := &investapi.Wallet{ID: "w1", Name: "Principal", Balance: 20000}

	gw.On("CreateInvestment", mock.Anything, "w1", mock.Anything).
		Return(&investapi.Investment{ID: "inv-4"}, nil)
	gw.On("UpdateWallet", mock.Anything, "w1", mock.Anything).
		Return(nil, nil)
	gw.On("GetWallet", mock.Anything, "w1").Return(fetched, nil)

	result, err := sub.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, money.Centavos(20000), result.Wallet.Balance)
	gw.AssertExpectations(t)
}

func TestSubmit_RefetchFailureFallsBackToLocalEcho(t *testing.T) {
	gw := new(MockGateway)
	sub := invest.NewSubmitter(gw, testLogger())

	draft := invest.NewDraft(acme(), mainWallet())
	draft.SetQuantity(3)

	gw.On("CreateInvestment", mock.Anything, "w1", mock.Anything).
		Return(&investapi.Investment{ID: "inv-5"}, nil)
	gw.On("UpdateWallet", mock.Anything, "w1", mock.Anything).
		Return(nil, nil)
	gw.On("GetWallet", mock.Anything, "w1").Return(nil, errors.New("timeout"))

	result, err := sub.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, money.Centavos(20000), result.Wallet.Balance)
}
