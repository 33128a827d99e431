// Package portfolio computes the aggregate views shown on the dashboard and
// wallet pages. Everything here is pure arithmetic over collections already
// fetched from the API; nothing is persisted or re-fetched.
package portfolio

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/pkg/money"
)

// MarketOverview is the dashboard's market-wide view.
type MarketOverview struct {
	// AvgRisk is the mean decoded risk weight across the catalog; companies
	// without a risk descriptor count as zero.
	AvgRisk decimal.Decimal
	// AvgValuation is the mean company valuation, in centavos.
	AvgValuation decimal.Decimal
	// AvgInvestmentPerWallet is the mean invested amount per wallet, in
	// centavos.
	AvgInvestmentPerWallet decimal.Decimal
}

// Overview aggregates the company catalog and the user's wallets.
func Overview(companies []investapi.Company, wallets []investapi.Wallet) MarketOverview {
	var overview MarketOverview
	if len(companies) == 0 {
		return overview
	}

	var totalRisk, totalValuation int64
	for _, c := range companies {
		if c.Risk != nil {
			totalRisk += int64(c.Risk.Weight)
		}
		totalValuation += int64(c.Valuation)
	}

	n := decimal.NewFromInt(int64(len(companies)))
	overview.AvgRisk = decimal.NewFromInt(totalRisk).Div(n)
	overview.AvgValuation = decimal.NewFromInt(totalValuation).Div(n)

	if len(wallets) > 0 {
		var totalInvested int64
		for _, w := range wallets {
			for _, inv := range w.Investments {
				totalInvested += int64(inv.Amount)
			}
		}
		overview.AvgInvestmentPerWallet = decimal.NewFromInt(totalInvested).
			Div(decimal.NewFromInt(int64(len(wallets))))
	}

	return overview
}

// WalletStats summarizes the user's wallets and their investments.
type WalletStats struct {
	// TotalFunds is the sum of all wallet balances.
	TotalFunds money.Centavos
	// AvgSpent is the mean spent amount per wallet, in centavos.
	AvgSpent decimal.Decimal
	// AvgRisk is the mean numeric risk across investments. Risk labels that
	// are not numeric count as zero.
	AvgRisk decimal.Decimal
	// AvgProfitability is the mean profitability percentage across
	// investments.
	AvgProfitability decimal.Decimal
}

// Stats aggregates the user's wallet set.
func Stats(wallets []investapi.Wallet) WalletStats {
	var stats WalletStats
	if len(wallets) == 0 {
		return stats
	}

	var totalSpent int64
	var totalRisk int64
	totalProfitability := decimal.Zero
	investments := 0

	for _, w := range wallets {
		stats.TotalFunds += w.Balance
		totalSpent += int64(w.SpentAmount)
		for _, inv := range w.Investments {
			totalRisk += int64(numericRisk(inv.Risk))
			totalProfitability = totalProfitability.Add(decimal.NewFromFloat(inv.Profitability))
			investments++
		}
	}

	stats.AvgSpent = decimal.NewFromInt(totalSpent).Div(decimal.NewFromInt(int64(len(wallets))))
	if investments > 0 {
		n := decimal.NewFromInt(int64(investments))
		stats.AvgRisk = decimal.NewFromInt(totalRisk).Div(n)
		stats.AvgProfitability = totalProfitability.Div(n)
	}

	return stats
}

// numericRisk reads an investment's risk label as a number when it is one.
func numericRisk(label string) int {
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0
	}
	return n
}

// Holding is an investment tagged with the wallet holding it, the row shape
// of the portfolio page.
type Holding struct {
	investapi.Investment
	WalletName string
}

// Flatten lists every investment across all wallets.
func Flatten(wallets []investapi.Wallet) []Holding {
	var holdings []Holding
	for _, w := range wallets {
		for _, inv := range w.Investments {
			holdings = append(holdings, Holding{Investment: inv, WalletName: w.Name})
		}
	}
	return holdings
}
