package api

import (
	"bytes"
	"carteira/internal/app"
	"carteira/internal/db/models/postgres/public/model"
	"carteira/internal/logger"
	"carteira/internal/repository"
	"carteira/internal/service"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                        *sql.DB
	LedgerService             service.LedgerService
	DividendSuggestionService service.DividendSuggestionService
	MetricsService            service.MetricsService
	BacktestHandler           app.BacktestHandler
	RiskFreeRate              service.RiskFreeRateProvider
	PortfolioRepository       repository.PortfolioRepository
	BacktestConfigRepository  repository.BacktestConfigRepository
	BacktestResultRepository  repository.BacktestResultRepository
	GptRepository             repository.GptRepository
	ApiRequestRepository      repository.ApiRequestRepository
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to carteira"})
	})

	router.POST("/portfolios", m.createPortfolio)
	router.GET("/portfolios", m.listPortfolios)

	router.POST("/portfolios/:portfolioId/transactions", m.createTransaction)
	router.GET("/portfolios/:portfolioId/transactions", m.listTransactions)
	router.POST("/transactions/:transactionId/confirm", m.confirmTransaction)
	router.POST("/transactions/:transactionId/reject", m.rejectTransaction)
	router.POST("/transactions/confirmBatch", m.confirmTransactionBatch)
	router.POST("/portfolios/:portfolioId/recalculate", m.recalculateBalances)
	router.POST("/parseTransactionDraft", m.parseTransactionDraft)

	router.POST("/portfolios/:portfolioId/dividendSuggestions", m.generateDividendSuggestions)
	router.GET("/portfolios/:portfolioId/metrics", m.getMetrics)

	router.POST("/backtestConfigs", m.createBacktestConfig)
	router.GET("/backtestConfigs", m.listBacktestConfigs)
	router.DELETE("/backtestConfigs/:configId", m.deleteBacktestConfig)
	router.POST("/backtestConfigs/:configId/run", m.runBacktest)
	router.GET("/backtestConfigs/:configId/results", m.listBacktestResults)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnw("request failed",
		"route", c.FullPath(),
		"status", code,
		"error", err.Error(),
	)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnw("failed to read request body", "error", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warnw("failed to record api request", "error", err)
	}

	if req != nil {
		ctx.Set("requestID", req.RequestID.String())
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		if err := m.ApiRequestRepository.Update(m.Db, *req); err != nil {
			log.Warnw("failed to finalize api request", "error", err)
		}
	}
}

func parseUuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}
