package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/investa-app/webclient/internal/invest"
	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/pkg/logger"
)

// InvestHandler serves the submission form and drives the submission flow.
type InvestHandler struct {
	api       *investapi.Client
	submitter *invest.Submitter
	render    *Renderer
	log       *logger.Logger
}

// NewInvestHandler creates an invest handler
func NewInvestHandler(api *investapi.Client, submitter *invest.Submitter, render *Renderer, log *logger.Logger) *InvestHandler {
	return &InvestHandler{
		api:       api,
		submitter: submitter,
		render:    render,
		log:       log.WithField("component", "invest"),
	}
}

type investWalletOption struct {
	ID       string
	Name     string
	Balance  string
	Selected bool
}

type investPage struct {
	Page
	CompanyID     string
	CompanyName   string
	UnitPrice     string
	HasDebt       bool
	DebtValue     string
	WalletBalance string
	Wallets       []investWalletOption
	Type          string
	Quantity      string
	Amount        string
}

func (h *InvestHandler) pageData(company *investapi.Company, wallets []investapi.Wallet, selectedWallet string) investPage {
	data := investPage{
		Page:        Page{Title: "Investir em " + company.Name, Authenticated: true},
		CompanyID:   company.ID,
		CompanyName: company.Name,
		UnitPrice:   company.UnitPrice.Format(),
		HasDebt:     company.Debt,
		DebtValue:   company.DebtValue.Format(),
		Type:        string(investapi.InvestmentTypeShare),
	}

	for _, w := range wallets {
		selected := w.ID == selectedWallet
		if selected {
			data.WalletBalance = w.Balance.Format()
		}
		data.Wallets = append(data.Wallets, investWalletOption{
			ID:       w.ID,
			Name:     w.Name,
			Balance:  w.Balance.Format(),
			Selected: selected,
		})
	}

	return data
}

func (h *InvestHandler) loadCompanyAndWallets(w http.ResponseWriter, r *http.Request) (*investapi.Company, []investapi.Wallet, bool) {
	companyID := chi.URLParam(r, "id")

	company, err := h.api.GetCompany(r.Context(), companyID)
	if err != nil {
		if investapi.IsNotFound(err) {
			http.NotFound(w, r)
			return nil, nil, false
		}
		h.log.Error("company fetch failed", "company_id", companyID, "error", err)
		h.render.HTML(w, http.StatusBadGateway, "companies", companiesPage{
			Page: Page{Title: "Empresas", Authenticated: true, Error: investapi.ErrorMessage(err, "Erro ao carregar a empresa")},
		})
		return nil, nil, false
	}

	wallets, err := h.api.ListWallets(r.Context())
	if err != nil {
		h.log.Error("wallet list failed", "error", err)
		h.render.HTML(w, http.StatusBadGateway, "invest", h.pageData(company, nil, ""))
		return nil, nil, false
	}

	return company, wallets, true
}

// Form renders the submission form. A wallet can be pre-selected via the
// "wallet" query parameter.
func (h *InvestHandler) Form(w http.ResponseWriter, r *http.Request) {
	company, wallets, ok := h.loadCompanyAndWallets(w, r)
	if !ok {
		return
	}

	h.render.HTML(w, http.StatusOK, "invest", h.pageData(company, wallets, r.URL.Query().Get("wallet")))
}

// Submit validates and commits the submission. Validation failures re-render
// the form with the rule's message and the typed values intact, so the form
// stays usable.
func (h *InvestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	company, wallets, ok := h.loadCompanyAndWallets(w, r)
	if !ok {
		return
	}

	walletID := r.FormValue("wallet")
	typeInput := r.FormValue("type")
	quantityInput := r.FormValue("quantity")
	amountInput := r.FormValue("amount")

	// The wallet must resolve against the fetched set; an unknown id is the
	// same as no selection.
	var wallet *investapi.Wallet
	for i := range wallets {
		if wallets[i].ID == walletID {
			wallet = &wallets[i]
			break
		}
	}

	draft := invest.NewDraft(*company, wallet)
	if typeInput != "" {
		draft.Type = investapi.InvestmentType(typeInput)
	}

	// In share-purchase mode the quantity drives the amount and overrides
	// any manual edit to the amount field.
	quantity, qerr := strconv.Atoi(quantityInput)
	if draft.Type == investapi.InvestmentTypeShare && qerr == nil && quantity > 0 {
		draft.SetQuantity(quantity)
	} else {
		draft.SetAmountInput(amountInput)
	}

	result, err := h.submitter.Submit(r.Context(), draft)
	if err != nil {
		data := h.pageData(company, wallets, walletID)
		data.Type = string(draft.Type)
		data.Quantity = quantityInput
		data.Amount = draft.AmountDisplay()

		var verr *invest.ValidationError
		if errors.As(err, &verr) {
			data.Error = verr.Message
			h.render.HTML(w, http.StatusUnprocessableEntity, "invest", data)
			return
		}

		h.log.Error("submission failed", "company_id", company.ID, "error", err)
		data.Error = "Erro ao realizar investimento"
		h.render.HTML(w, http.StatusBadGateway, "invest", data)
		return
	}

	http.Redirect(w, r, "/dashboard/wallets/"+result.Wallet.ID, http.StatusSeeOther)
}
