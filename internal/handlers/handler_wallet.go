package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("", h.listWallets)
		wallets.GET("/:walletID", h.getWallet)
		wallets.PUT("/:walletID", h.updateWallet)
		wallets.DELETE("/:walletID", h.deleteWallet)
		wallets.GET("/:walletID/balance", h.getWalletBalance)
	}
}

// createWallet godoc
// @Summary Create a wallet
// @Description Opens a wallet in the given currency. A user holds at most one wallet per currency.
// @Tags wallets
// @Accept json
// @Produce json
// @Param wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Wallet for this currency already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Wallet")
		return
	}

	logger.Info("Wallet created successfully", slog.String("wallet_id", wallet.WalletID))
	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}

// listWallets godoc
// @Summary List wallets
// @Description Lists all wallets of the authenticated user
// @Tags wallets
// @Produce json
// @Success 200 {array} dto.WalletResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	wallets, err := h.walletService.ListWallets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWalletResponse(wallets))
}

// getWallet godoc
// @Summary Get a wallet
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{walletID} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	walletID := c.Param("walletID")
	logger = logger.With(slog.String("wallet_id", walletID))

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), userID, walletID)
	if err != nil {
		respondWithError(c, logger, err, "Wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// updateWallet godoc
// @Summary Update a wallet
// @Description Renames a wallet or changes its initial balance. The currency cannot change.
// @Tags wallets
// @Accept json
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Param wallet body dto.UpdateWalletRequest true "Fields to update"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{walletID} [put]
func (h *walletHandler) updateWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	walletID := c.Param("walletID")
	logger = logger.With(slog.String("wallet_id", walletID))

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	wallet, err := h.walletService.UpdateWallet(c.Request.Context(), userID, walletID, req)
	if err != nil {
		respondWithError(c, logger, err, "Wallet")
		return
	}

	logger.Info("Wallet updated successfully")
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// deleteWallet godoc
// @Summary Delete a wallet
// @Description Deletes a wallet and every transaction recorded in it
// @Tags wallets
// @Param walletID path string true "Wallet ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{walletID} [delete]
func (h *walletHandler) deleteWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	walletID := c.Param("walletID")
	logger = logger.With(slog.String("wallet_id", walletID))

	if err := h.walletService.DeleteWallet(c.Request.Context(), userID, walletID); err != nil {
		respondWithError(c, logger, err, "Wallet")
		return
	}

	logger.Info("Wallet deleted")
	c.Status(http.StatusNoContent)
}

// getWalletBalance godoc
// @Summary Get a wallet balance
// @Description Computes the native and USD balance of a wallet from its initial balance and transactions
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{walletID}/balance [get]
func (h *walletHandler) getWalletBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	walletID := c.Param("walletID")
	logger = logger.With(slog.String("wallet_id", walletID))

	balance, err := h.walletService.GetWalletBalance(c.Request.Context(), userID, walletID)
	if err != nil {
		respondWithError(c, logger, err, "Wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletBalanceResponse(balance))
}
