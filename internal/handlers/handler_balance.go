package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvc
}

func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := &balanceHandler{balanceService: balanceService}
	rg.GET("/balance", h.getAccountTotal)
}

// getAccountTotal godoc
// @Summary Get the account total
// @Description Sums the USD balance of every wallet of the authenticated user. Balances are recomputed on each call.
// @Tags balance
// @Produce json
// @Success 200 {object} dto.AccountTotalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance [get]
func (h *balanceHandler) getAccountTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	total, err := h.balanceService.GetAccountTotal(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountTotalResponse(total))
}
