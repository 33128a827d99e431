package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/pkg/logger"
)

// CompanyHandler serves the company catalog and detail pages.
type CompanyHandler struct {
	api    *investapi.Client
	render *Renderer
	log    *logger.Logger
}

// NewCompanyHandler creates a company handler
func NewCompanyHandler(api *investapi.Client, render *Renderer, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{api: api, render: render, log: log.WithField("component", "companies")}
}

type companyRow struct {
	ID            string
	Name          string
	Sector        string
	UnitPrice     string
	Profitability string
	Risk          string
}

type companiesPage struct {
	Page
	Companies []companyRow
}

// List renders the catalog.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.api.ListCompanies(r.Context())
	if err != nil {
		h.log.Error("company list failed", "error", err)
		h.render.HTML(w, http.StatusBadGateway, "companies", companiesPage{
			Page: Page{Title: "Empresas", Authenticated: true, Error: investapi.ErrorMessage(err, "Erro ao carregar as empresas")},
		})
		return
	}

	rows := make([]companyRow, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, companyRow{
			ID:            c.ID,
			Name:          c.Name,
			Sector:        c.Sector,
			UnitPrice:     c.UnitPrice.Format(),
			Profitability: formatPercent(c.Profitability),
			Risk:          investapi.RiskLabel(c.Risk),
		})
	}

	h.render.HTML(w, http.StatusOK, "companies", companiesPage{
		Page:      Page{Title: "Empresas", Authenticated: true},
		Companies: rows,
	})
}

type companyPage struct {
	Page
	ID            string
	Name          string
	Description   string
	UnitPrice     string
	Valuation     string
	Profitability string
	Risk          string
	HasDebt       bool
	DebtValue     string
}

// Show renders one company.
func (h *CompanyHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	company, err := h.api.GetCompany(r.Context(), id)
	if err != nil {
		if investapi.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("company fetch failed", "company_id", id, "error", err)
		h.render.HTML(w, http.StatusBadGateway, "companies", companiesPage{
			Page: Page{Title: "Empresas", Authenticated: true, Error: investapi.ErrorMessage(err, "Erro ao carregar a empresa")},
		})
		return
	}

	h.render.HTML(w, http.StatusOK, "company", companyPage{
		Page:          Page{Title: company.Name, Authenticated: true},
		ID:            company.ID,
		Name:          company.Name,
		Description:   company.Description,
		UnitPrice:     company.UnitPrice.Format(),
		Valuation:     company.Valuation.Format(),
		Profitability: formatPercent(company.Profitability),
		Risk:          investapi.RiskLabel(company.Risk),
		HasDebt:       company.Debt,
		DebtValue:     company.DebtValue.Format(),
	})
}
