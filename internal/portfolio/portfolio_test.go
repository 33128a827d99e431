package portfolio_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/internal/portfolio"
	"github.com/investa-app/webclient/pkg/money"
)

func wallets() []investapi.Wallet {
	return []investapi.Wallet{
		{
			ID: "w1", Name: "Principal", Balance: 50000, SpentAmount: 30000,
			Investments: []investapi.Investment{
				{ID: "i1", Name: "Acme", Amount: 20000, Risk: "80", Profitability: 10},
				{ID: "i2", Name: "Beta", Amount: 10000, Risk: "Alto", Profitability: 20},
			},
		},
		{
			ID: "w2", Name: "Reserva", Balance: 10000, SpentAmount: 10000,
			Investments: []investapi.Investment{
				{ID: "i3", Name: "Gama", Amount: 10000, Risk: "40", Profitability: 30},
			},
		},
	}
}

func TestOverview(t *testing.T) {
	companies := []investapi.Company{
		{ID: "c1", Valuation: 1000000, Risk: &investapi.Risk{Label: "Alto", Weight: 80}},
		{ID: "c2", Valuation: 3000000, Risk: nil},
	}

	o := portfolio.Overview(companies, wallets())

	assert.True(t, o.AvgRisk.Equal(decimal.NewFromInt(40)), "avg risk = %s", o.AvgRisk)
	assert.True(t, o.AvgValuation.Equal(decimal.NewFromInt(2000000)), "avg valuation = %s", o.AvgValuation)
	// 40000 centavos invested across 2 wallets
	assert.True(t, o.AvgInvestmentPerWallet.Equal(decimal.NewFromInt(20000)), "avg investment = %s", o.AvgInvestmentPerWallet)
}

func TestOverview_EmptyCatalog(t *testing.T) {
	o := portfolio.Overview(nil, wallets())
	assert.True(t, o.AvgRisk.IsZero())
	assert.True(t, o.AvgValuation.IsZero())
	assert.True(t, o.AvgInvestmentPerWallet.IsZero())
}

func TestOverview_NoWallets(t *testing.T) {
	companies := []investapi.Company{{ID: "c1", Valuation: 500}}
	o := portfolio.Overview(companies, nil)
	assert.True(t, o.AvgInvestmentPerWallet.IsZero())
}

func TestStats(t *testing.T) {
	s := portfolio.Stats(wallets())

	assert.Equal(t, money.Centavos(60000), s.TotalFunds)
	assert.True(t, s.AvgSpent.Equal(decimal.NewFromInt(20000)), "avg spent = %s", s.AvgSpent)
	// risks: 80 + 0 (non-numeric label) + 40 over 3 investments
	assert.True(t, s.AvgRisk.Equal(decimal.NewFromInt(40)), "avg risk = %s", s.AvgRisk)
	assert.True(t, s.AvgProfitability.Equal(decimal.NewFromInt(20)), "avg profitability = %s", s.AvgProfitability)
}

func TestStats_Empty(t *testing.T) {
	s := portfolio.Stats(nil)
	assert.Equal(t, money.Centavos(0), s.TotalFunds)
	assert.True(t, s.AvgSpent.IsZero())
	assert.True(t, s.AvgRisk.IsZero())
	assert.True(t, s.AvgProfitability.IsZero())
}

func TestStats_WalletsWithoutInvestments(t *testing.T) {
	s := portfolio.Stats([]investapi.Wallet{{ID: "w1", Balance: 100, SpentAmount: 50}})
	assert.Equal(t, money.Centavos(100), s.TotalFunds)
	assert.True(t, s.AvgRisk.IsZero())
}

func TestFlatten(t *testing.T) {
	holdings := portfolio.Flatten(wallets())

	assert.Len(t, holdings, 3)
	assert.Equal(t, "Acme", holdings[0].Name)
	assert.Equal(t, "Principal", holdings[0].WalletName)
	assert.Equal(t, "Reserva", holdings[2].WalletName)
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, portfolio.Flatten(nil))
}
