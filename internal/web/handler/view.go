package handler

import (
	"fmt"

	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/pkg/money"
	"github.com/shopspring/decimal"
)

// formatDecimalMoney renders a centavo-valued decimal as currency.
func formatDecimalMoney(d decimal.Decimal) string {
	return money.Centavos(d.Round(0).IntPart()).Format()
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

func typeLabel(t investapi.InvestmentType) string {
	switch t {
	case investapi.InvestmentTypeDebtSettlement:
		return "Quitação de dívida"
	default:
		return "Ação"
	}
}

func newInvestmentRow(inv investapi.Investment) investmentRow {
	risk := inv.Risk
	if risk == "" {
		risk = "N/A"
	}
	return investmentRow{
		Name:          inv.Name,
		Amount:        inv.Amount.Format(),
		UnitPrice:     inv.UnitPrice.Format(),
		Type:          typeLabel(inv.Type),
		Risk:          risk,
		Profitability: formatPercent(inv.Profitability),
		PurchaseDate:  inv.PurchaseDate.Format("02/01/2006"),
	}
}
