package handler

import (
	"net/http"

	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/internal/portfolio"
	"github.com/investa-app/webclient/pkg/logger"
)

// PortfolioHandler serves the market overview and the aggregated holdings
// pages.
type PortfolioHandler struct {
	api    *investapi.Client
	render *Renderer
	log    *logger.Logger
}

// NewPortfolioHandler creates a portfolio handler
func NewPortfolioHandler(api *investapi.Client, render *Renderer, log *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{api: api, render: render, log: log.WithField("component", "portfolio")}
}

type dashboardPage struct {
	Page
	AvgRisk                string
	AvgValuation           string
	AvgInvestmentPerWallet string
	Companies              []companyRow
}

// Dashboard renders the market overview: catalog averages plus the average
// invested amount across the user's wallets.
func (h *PortfolioHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardPage{Page: Page{Title: "Visão geral", Authenticated: true}}

	companies, err := h.api.ListCompanies(r.Context())
	if err != nil {
		h.log.Error("company list failed", "error", err)
		data.Error = investapi.ErrorMessage(err, "Erro ao carregar o mercado")
		h.render.HTML(w, http.StatusBadGateway, "dashboard", data)
		return
	}

	wallets, err := h.api.ListWallets(r.Context())
	if err != nil {
		h.log.Error("wallet list failed", "error", err)
		data.Error = investapi.ErrorMessage(err, "Erro ao carregar as carteiras")
		h.render.HTML(w, http.StatusBadGateway, "dashboard", data)
		return
	}

	overview := portfolio.Overview(companies, wallets)
	data.AvgRisk = overview.AvgRisk.StringFixed(0)
	data.AvgValuation = formatDecimalMoney(overview.AvgValuation)
	data.AvgInvestmentPerWallet = formatDecimalMoney(overview.AvgInvestmentPerWallet)

	for _, c := range companies {
		data.Companies = append(data.Companies, companyRow{
			ID:            c.ID,
			Name:          c.Name,
			Sector:        c.Sector,
			UnitPrice:     c.UnitPrice.Format(),
			Profitability: formatPercent(c.Profitability),
			Risk:          investapi.RiskLabel(c.Risk),
		})
	}

	h.render.HTML(w, http.StatusOK, "dashboard", data)
}

type holdingRow struct {
	investmentRow
	WalletName string
}

type portfolioPage struct {
	Page
	Holdings []holdingRow
}

// Portfolio renders every investment across every wallet.
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	data := portfolioPage{Page: Page{Title: "Portfólio", Authenticated: true}}

	wallets, err := h.api.ListWallets(r.Context())
	if err != nil {
		h.log.Error("wallet list failed", "error", err)
		data.Error = investapi.ErrorMessage(err, "Erro ao carregar o portfólio")
		h.render.HTML(w, http.StatusBadGateway, "portfolio", data)
		return
	}

	for _, holding := range portfolio.Flatten(wallets) {
		data.Holdings = append(data.Holdings, holdingRow{
			investmentRow: newInvestmentRow(holding.Investment),
			WalletName:    holding.WalletName,
		})
	}

	h.render.HTML(w, http.StatusOK, "portfolio", data)
}
