package api

import (
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/repository"
	"carteira/internal/service"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	Ticker   *string  `json:"ticker"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
	Amount   float64  `json:"amount"`
	Notes    *string  `json:"notes"`

	// Confirm skips the pending state and applies the transaction
	// immediately.
	Confirm bool `json:"confirm"`
}

func (h ApiHandler) createTransaction(c *gin.Context) {
	portfolioID, err := parseUuidParam(c, "portfolioId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody CreateTransactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	draft, err := draftFromRequest(portfolioID, requestBody)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	inserted, err := h.LedgerService.CreateTransaction(c.Request.Context(), *draft)
	if err != nil {
		if repository.IsDuplicateDividend(err) {
			returnErrorJsonCode(fmt.Errorf("a dividend for this ticker and date already exists; edit or reject it first"), c, 409)
			return
		}
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, inserted)
}

func draftFromRequest(portfolioID uuid.UUID, requestBody CreateTransactionRequest) (*service.TransactionDraft, error) {
	date, err := time.Parse("2006-01-02", requestBody.Date)
	if err != nil {
		return nil, err
	}

	draft := service.TransactionDraft{
		PortfolioID: portfolioID,
		Date:        date,
		Type:        model.TransactionType(requestBody.Type),
		Ticker:      requestBody.Ticker,
		Amount:      decimal.NewFromFloat(requestBody.Amount),
		Notes:       requestBody.Notes,
		AutoConfirm: requestBody.Confirm,
	}
	if requestBody.Quantity != nil {
		quantity := decimal.NewFromFloat(*requestBody.Quantity)
		draft.Quantity = &quantity
	}
	if requestBody.Price != nil {
		price := decimal.NewFromFloat(*requestBody.Price)
		draft.Price = &price
	}

	return &draft, nil
}

type ReplayResponse struct {
	CashBalance      string                   `json:"cashBalance"`
	Positions        map[string]float64       `json:"positions"`
	DataQualityFlags []map[string]interface{} `json:"dataQualityFlags"`
}

func replayResponse(result *service.ReplayResult) ReplayResponse {
	out := ReplayResponse{
		CashBalance:      result.Final.Cash.StringFixed(2),
		Positions:        map[string]float64{},
		DataQualityFlags: []map[string]interface{}{},
	}
	for ticker, position := range result.Final.Positions {
		out.Positions[ticker] = position.Quantity.InexactFloat64()
	}
	for _, flag := range result.Flags {
		out.DataQualityFlags = append(out.DataQualityFlags, map[string]interface{}{
			"code":    string(flag.Code),
			"ticker":  flag.Ticker,
			"date":    flag.Date.Format("2006-01-02"),
			"message": flag.Message,
		})
	}
	return out
}

func (h ApiHandler) confirmTransaction(c *gin.Context) {
	transactionID, err := parseUuidParam(c, "transactionId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := h.LedgerService.Confirm(c.Request.Context(), transactionID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, replayResponse(result))
}

func (h ApiHandler) rejectTransaction(c *gin.Context) {
	transactionID, err := parseUuidParam(c, "transactionId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := h.LedgerService.Reject(c.Request.Context(), transactionID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"status": "rejected"})
}

type ConfirmBatchRequest struct {
	TransactionIDs []string `json:"transactionIds"`
}

func (h ApiHandler) confirmTransactionBatch(c *gin.Context) {
	var requestBody ConfirmBatchRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	ids := make([]uuid.UUID, 0, len(requestBody.TransactionIDs))
	for _, raw := range requestBody.TransactionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		ids = append(ids, id)
	}

	results, err := h.LedgerService.ConfirmBatch(c.Request.Context(), ids)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := map[string]ReplayResponse{}
	for portfolioID, result := range results {
		out[portfolioID.String()] = replayResponse(result)
	}

	c.JSON(200, out)
}

func (h ApiHandler) recalculateBalances(c *gin.Context) {
	portfolioID, err := parseUuidParam(c, "portfolioId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := h.LedgerService.RecalculateBalances(c.Request.Context(), portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, replayResponse(result))
}

func (h ApiHandler) listTransactions(c *gin.Context) {
	portfolioID, err := parseUuidParam(c, "portfolioId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	filter := repository.TransactionListFilter{}
	if raw := c.Query("status"); raw != "" {
		status := model.TransactionStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("type"); raw != "" {
		transactionType := model.TransactionType(raw)
		filter.Type = &transactionType
	}
	if raw := c.Query("ticker"); raw != "" {
		filter.Ticker = &raw
	}
	if raw := c.Query("startDate"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.StartDate = &date
	}
	if raw := c.Query("endDate"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.EndDate = &date
	}

	transactions, err := h.LedgerService.List(c.Request.Context(), portfolioID, filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, transactions)
}

type ParseTransactionDraftRequest struct {
	Description string `json:"description"`
}

func (h ApiHandler) parseTransactionDraft(c *gin.Context) {
	var requestBody ParseTransactionDraftRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Description == "" {
		returnErrorJsonCode(fmt.Errorf("description is required"), c, 400)
		return
	}

	draft, err := h.GptRepository.ParseTransactionDraft(c.Request.Context(), requestBody.Description)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, draft)
}
