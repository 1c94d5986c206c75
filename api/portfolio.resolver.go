package api

import (
	"carteira/internal/db/models/postgres/public/model"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreatePortfolioRequest struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
}

func (h ApiHandler) createPortfolio(c *gin.Context) {
	var requestBody CreatePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	userID, err := uuid.Parse(requestBody.UserID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("name is required"), c, 400)
		return
	}

	tx, err := h.Db.BeginTx(c.Request.Context(), nil)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to begin transaction: %w", err), c)
		return
	}
	defer tx.Rollback()

	inserted, err := h.PortfolioRepository.Add(tx, model.Portfolio{
		UserID: userID,
		Name:   requestBody.Name,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, inserted)
}

func (h ApiHandler) listPortfolios(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid userID: %w", err), c, 400)
		return
	}

	portfolios, err := h.PortfolioRepository.List(h.Db, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolios)
}
