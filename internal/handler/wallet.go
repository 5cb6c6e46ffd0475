package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/tsdc-wallet/internal/common"
	"github.com/AlexZinkM/tsdc-wallet/internal/model"
	"github.com/AlexZinkM/tsdc-wallet/internal/wallet"
	"github.com/AlexZinkM/tsdc-wallet/solana"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PriceSource quotes a coin in a fiat or crypto currency
type PriceSource interface {
	GetPrice(ctx context.Context, coinID, vsCurrency string) (decimal.Decimal, error)
}

// TokenSettings identifies the token shown on the dashboard and how to price it
type TokenSettings struct {
	Mint          string
	PriceCoinID   string
	PriceCurrency string
}

// WalletHandler serves the wallet API on top of a wallet.Store
type WalletHandler struct {
	store  *wallet.Store
	prices PriceSource
	token  TokenSettings
	log    *zap.Logger
}

// NewWalletHandler creates a new WalletHandler. prices may be nil.
func NewWalletHandler(store *wallet.Store, prices PriceSource, token TokenSettings, log *zap.Logger) *WalletHandler {
	return &WalletHandler{
		store:  store,
		prices: prices,
		token:  token,
		log:    log.Named("http"),
	}
}

// List handles GET /wallets
// @Summary      List wallets
// @Description  Lists all wallets in creation order and the active wallet id
// @Tags         wallets
// @Produce      json
// @Success      200  {object}  model.WalletsResponse
// @Router       /wallets [get]
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	h.writeWallets(w)
}

func (h *WalletHandler) writeWallets(w http.ResponseWriter) {
	snap := h.store.Snapshot()
	resp := model.WalletsResponse{
		ActiveID: snap.ActiveID,
		Wallets:  make([]model.WalletView, 0, len(snap.Wallets)),
	}
	for _, rec := range snap.Wallets {
		resp.Wallets = append(resp.Wallets, view(rec, snap.ActiveID))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /wallets/create
// @Summary      Create new wallet
// @Description  Generates a new wallet, protects its key with the password and makes it active
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateRequest  true  "Wallet name and password"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallets/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
		return
	}

	rec, err := h.store.Create(r.Context(), req.Name, req.Password)
	if err != nil {
		h.fail(w, "create wallet", err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet created successfully",
		Wallet:  view(rec, rec.ID),
	})
}

// Import handles POST /wallets/import
// @Summary      Import wallet
// @Description  Imports a wallet from private key material and makes it active
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Wallet name, private key and password"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallets/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
		return
	}

	rec, err := h.store.Import(r.Context(), req.Name, req.PrivateKey, req.Password)
	if err != nil {
		h.fail(w, "import wallet", err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet imported successfully",
		Wallet:  view(rec, rec.ID),
	})
}

// Activate handles POST /wallets/activate
// @Summary      Switch active wallet
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.ActivateRequest  true  "Wallet id"
// @Success      200      {object}  model.WalletsResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallets/activate [post]
func (h *WalletHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
		return
	}

	ok, err := h.store.Activate(r.Context(), req.ID)
	if err != nil {
		h.fail(w, "activate wallet", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, model.CodeNotFound, wallet.ErrNotFound.Error())
		return
	}

	h.writeWallets(w)
}

// Balance handles GET /wallets/balance
// @Summary      Get active wallet balance
// @Description  Returns the last known balance; refresh=true fetches it first
// @Tags         wallets
// @Produce      json
// @Param        refresh  query     bool  false  "Fetch before answering"
// @Success      200      {object}  model.BalanceResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallets/balance [get]
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	rec, ok := h.store.Active()
	if !ok {
		h.fail(w, "get balance", wallet.ErrNoActiveWallet)
		return
	}

	balance := h.store.Balance()
	if r.URL.Query().Get("refresh") == "true" {
		var err error
		balance, err = h.store.RefreshBalance(r.Context())
		if err != nil {
			h.fail(w, "refresh balance", err)
			return
		}
	}

	resp := model.BalanceResponse{
		WalletID: rec.ID,
		Address:  rec.PublicAddress,
		Symbol:   "TSDC",
	}
	if balance != nil {
		resp.Known = true
		resp.Balance = common.FormatAmount(*balance)
		resp.Display = common.DisplayAmount(*balance)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Send handles POST /wallets/send
// @Summary      Send TSDC
// @Description  Sends TSDC from the active wallet to the specified address
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Payment data"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallets/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, err.Error())
		return
	}

	if !solana.IsValidAddress(req.ToAddress) {
		writeError(w, http.StatusBadRequest, model.CodeValidation, "invalid Solana address")
		return
	}
	amount, err := common.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeValidation, err.Error())
		return
	}

	txID, err := h.store.SendTransaction(r.Context(), req.ToAddress, amount)
	if err != nil {
		h.fail(w, "send transaction", err)
		return
	}

	resp := model.SendResponse{TxID: txID}
	if b := h.store.Balance(); b != nil {
		resp.Balance = common.FormatAmount(*b)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Receive handles GET /wallets/receive
// @Summary      Receive address
// @Description  Returns the active wallet address with a QR code (base64 PNG)
// @Tags         wallets
// @Produce      json
// @Success      200  {object}  model.ReceiveResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallets/receive [get]
func (h *WalletHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	rec, ok := h.store.Active()
	if !ok {
		h.fail(w, "receive", wallet.ErrNoActiveWallet)
		return
	}

	qr, err := solana.AddressQR(rec.PublicAddress)
	if err != nil {
		h.fail(w, "render QR", err)
		return
	}
	writeJSON(w, http.StatusOK, model.ReceiveResponse{Address: rec.PublicAddress, QR: qr})
}

// Token handles GET /token
// @Summary      Token info
// @Description  Returns TSDC token details and, when available, its price
// @Tags         token
// @Produce      json
// @Success      200  {object}  model.TokenInfo
// @Router       /token [get]
func (h *WalletHandler) Token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	info := model.TokenInfo{
		Name:     "TSDC Coin",
		Symbol:   "TSDC",
		Network:  solana.Network,
		Mint:     h.token.Mint,
		Type:     "SPL Token",
		Decimals: common.TSDCDecimals,
		Website:  "https://www.tsdcoin.com",
	}

	// price is best effort; the rest of the info is static
	if h.prices != nil && h.token.PriceCoinID != "" {
		price, err := h.prices.GetPrice(r.Context(), h.token.PriceCoinID, h.token.PriceCurrency)
		if err != nil {
			h.log.Warn("failed to get token price", zap.Error(err))
		} else {
			info.Price = price.String()
			info.Currency = h.token.PriceCurrency
		}
	}
	writeJSON(w, http.StatusOK, info)
}

// fail maps store errors to HTTP statuses
func (h *WalletHandler) fail(w http.ResponseWriter, op string, err error) {
	status, code := http.StatusInternalServerError, model.CodeInternal
	switch {
	case errors.Is(err, wallet.ErrValidation):
		status, code = http.StatusBadRequest, model.CodeValidation
	case errors.Is(err, wallet.ErrNotFound):
		status, code = http.StatusNotFound, model.CodeNotFound
	case errors.Is(err, wallet.ErrNoActiveWallet):
		status, code = http.StatusConflict, model.CodeNoActiveWallet
	case errors.Is(err, wallet.ErrNetwork):
		status, code = http.StatusBadGateway, model.CodeNetwork
	case errors.Is(err, wallet.ErrTransaction):
		status, code = http.StatusBadGateway, model.CodeTransaction
	case errors.Is(err, wallet.ErrStorage):
		code = model.CodeStorage
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("op", op), zap.Error(err))
	} else {
		h.log.Debug("request rejected", zap.String("op", op), zap.Error(err))
	}
	writeError(w, status, code, err.Error())
}

func view(rec model.WalletRecord, activeID string) model.WalletView {
	return model.WalletView{
		ID:            rec.ID,
		Name:          rec.Name,
		PublicAddress: rec.PublicAddress,
		Active:        rec.ID == activeID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}
