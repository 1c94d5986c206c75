package api

import (
	"carteira/internal/domain"
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// backtestTimeout bounds one simulation. A run that cannot finish in
// this window is misconfigured, not slow.
const backtestTimeout = 30 * time.Second

type CreateBacktestConfigRequest struct {
	UserID              string                 `json:"userID"`
	Name                string                 `json:"name"`
	Assets              []domain.BacktestAsset `json:"assets"`
	StartDate           string                 `json:"startDate"`
	EndDate             string                 `json:"endDate"`
	InitialCapital      float64                `json:"initialCapital"`
	MonthlyContribution float64                `json:"monthlyContribution"`
	RebalanceFrequency  string                 `json:"rebalanceFrequency"`
}

func (h ApiHandler) createBacktestConfig(c *gin.Context) {
	var requestBody CreateBacktestConfigRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}
	startDate, err := time.Parse("2006-01-02", requestBody.StartDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	endDate, err := time.Parse("2006-01-02", requestBody.EndDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if !startDate.Before(endDate) {
		returnErrorJsonCode(fmt.Errorf("startDate must precede endDate"), c, 400)
		return
	}
	if requestBody.InitialCapital <= 0 {
		returnErrorJsonCode(fmt.Errorf("initialCapital must be positive"), c, 400)
		return
	}

	tx, err := h.Db.BeginTx(c.Request.Context(), nil)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to begin transaction: %w", err), c)
		return
	}
	defer tx.Rollback()

	inserted, err := h.BacktestConfigRepository.Add(tx, domain.BacktestConfig{
		UserID:              userID,
		Name:                requestBody.Name,
		Assets:              requestBody.Assets,
		StartDate:           startDate,
		EndDate:             endDate,
		InitialCapital:      decimal.NewFromFloat(requestBody.InitialCapital),
		MonthlyContribution: decimal.NewFromFloat(requestBody.MonthlyContribution),
		RebalanceFrequency:  requestBody.RebalanceFrequency,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, inserted)
}

func (h ApiHandler) listBacktestConfigs(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	configs, err := h.BacktestConfigRepository.List(h.Db, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, configs)
}

func (h ApiHandler) deleteBacktestConfig(c *gin.Context) {
	configID, err := parseUuidParam(c, "configId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	tx, err := h.Db.BeginTx(c.Request.Context(), nil)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to begin transaction: %w", err), c)
		return
	}
	defer tx.Rollback()

	if err := h.BacktestConfigRepository.Delete(tx, configID); err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, gin.H{"status": "deleted"})
}

func (h ApiHandler) runBacktest(c *gin.Context) {
	configID, err := parseUuidParam(c, "configId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	config, err := h.BacktestConfigRepository.Get(h.Db, configID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	riskFreeRate, err := h.RiskFreeRate.GetRiskFreeRate(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	profile := domain.NewPerformanceProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)
	ctx, cancel := context.WithTimeout(ctx, backtestTimeout)
	defer cancel()

	result, err := h.BacktestHandler.RunAndPersist(ctx, *config, riskFreeRate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}

func (h ApiHandler) listBacktestResults(c *gin.Context) {
	configID, err := parseUuidParam(c, "configId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	results, err := h.BacktestResultRepository.List(h.Db, configID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, results)
}
