package handler

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"
	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/internal/portfolio"
	"github.com/investa-app/webclient/pkg/logger"
	"github.com/investa-app/webclient/pkg/money"
)

// WalletHandler serves the wallet list, creation and detail pages.
type WalletHandler struct {
	api    *investapi.Client
	render *Renderer
	log    *logger.Logger
}

// NewWalletHandler creates a wallet handler
func NewWalletHandler(api *investapi.Client, render *Renderer, log *logger.Logger) *WalletHandler {
	return &WalletHandler{api: api, render: render, log: log.WithField("component", "wallets")}
}

type walletRow struct {
	ID          string
	Name        string
	Balance     string
	SpentAmount string
	FundsAdded  string
}

type walletsPage struct {
	Page
	TotalFunds       string
	AvgSpent         string
	AvgRisk          string
	AvgProfitability string
	FormName         string
	FormBalance      string
	Wallets          []walletRow
}

func (h *WalletHandler) walletsPageData(wallets []investapi.Wallet) walletsPage {
	stats := portfolio.Stats(wallets)

	rows := make([]walletRow, 0, len(wallets))
	for _, w := range wallets {
		rows = append(rows, walletRow{
			ID:          w.ID,
			Name:        w.Name,
			Balance:     w.Balance.Format(),
			SpentAmount: w.SpentAmount.Format(),
			FundsAdded:  w.FundsAdded.Format(),
		})
	}

	return walletsPage{
		Page:             Page{Title: "Carteiras", Authenticated: true},
		TotalFunds:       stats.TotalFunds.Format(),
		AvgSpent:         formatDecimalMoney(stats.AvgSpent),
		AvgRisk:          stats.AvgRisk.StringFixed(0),
		AvgProfitability: stats.AvgProfitability.StringFixed(1) + "%",
		Wallets:          rows,
	}
}

// List renders the wallet overview with aggregate stats.
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.api.ListWallets(r.Context())
	if err != nil {
		h.log.Error("wallet list failed", "error", err)
		data := h.walletsPageData(nil)
		data.Error = investapi.ErrorMessage(err, "Erro ao carregar as carteiras")
		h.render.HTML(w, http.StatusBadGateway, "wallets", data)
		return
	}

	h.render.HTML(w, http.StatusOK, "wallets", h.walletsPageData(wallets))
}

// Create creates a wallet. The funds added start equal to the opening
// balance, nothing has been spent yet.
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	balanceInput := r.FormValue("balance")

	if name == "" {
		h.rerenderList(w, r, http.StatusUnprocessableEntity, "Nome da carteira é obrigatório", name, balanceInput)
		return
	}
	if !strings.ContainsFunc(balanceInput, unicode.IsDigit) {
		h.rerenderList(w, r, http.StatusUnprocessableEntity, "Saldo inicial é obrigatório", name, balanceInput)
		return
	}

	_, err := h.api.CreateWallet(r.Context(), investapi.CreateWalletInput{
		Name:    name,
		Balance: money.Parse(balanceInput),
	})
	if err != nil {
		h.log.Error("wallet create failed", "error", err)
		h.rerenderList(w, r, http.StatusBadGateway, investapi.ErrorMessage(err, "Erro ao criar a carteira"), name, balanceInput)
		return
	}

	http.Redirect(w, r, "/dashboard/wallets", http.StatusSeeOther)
}

func (h *WalletHandler) rerenderList(w http.ResponseWriter, r *http.Request, status int, errMsg, name, balance string) {
	wallets, err := h.api.ListWallets(r.Context())
	if err != nil {
		h.log.Error("wallet list failed", "error", err)
	}
	data := h.walletsPageData(wallets)
	data.Error = errMsg
	data.FormName = name
	data.FormBalance = balance
	h.render.HTML(w, status, "wallets", data)
}

// Delete removes a wallet.
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.api.DeleteWallet(r.Context(), id); err != nil {
		h.log.Error("wallet delete failed", "wallet_id", id, "error", err)
		h.rerenderList(w, r, http.StatusBadGateway, investapi.ErrorMessage(err, "Erro ao excluir a carteira"), "", "")
		return
	}

	http.Redirect(w, r, "/dashboard/wallets", http.StatusSeeOther)
}

type investmentRow struct {
	Name          string
	Amount        string
	UnitPrice     string
	Type          string
	Risk          string
	Profitability string
	PurchaseDate  string
}

type walletPage struct {
	Page
	Name        string
	Balance     string
	SpentAmount string
	FundsAdded  string
	Investments []investmentRow
}

// Show renders one wallet with its investments.
func (h *WalletHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	wallet, err := h.api.GetWallet(r.Context(), id)
	if err != nil {
		if investapi.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("wallet fetch failed", "wallet_id", id, "error", err)
		h.rerenderList(w, r, http.StatusBadGateway, investapi.ErrorMessage(err, "Erro ao carregar a carteira"), "", "")
		return
	}

	investments, err := h.api.WalletInvestments(r.Context(), id)
	if err != nil {
		h.log.Error("wallet investments fetch failed", "wallet_id", id, "error", err)
	}

	rows := make([]investmentRow, 0, len(investments))
	for _, inv := range investments {
		rows = append(rows, newInvestmentRow(inv))
	}

	h.render.HTML(w, http.StatusOK, "wallet", walletPage{
		Page:        Page{Title: wallet.Name, Authenticated: true},
		Name:        wallet.Name,
		Balance:     wallet.Balance.Format(),
		SpentAmount: wallet.SpentAmount.Format(),
		FundsAdded:  wallet.FundsAdded.Format(),
		Investments: rows,
	})
}
