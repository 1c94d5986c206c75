package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type GenerateDividendSuggestionsRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (h ApiHandler) generateDividendSuggestions(c *gin.Context) {
	portfolioID, err := parseUuidParam(c, "portfolioId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody GenerateDividendSuggestionsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	start, err := time.Parse("2006-01-02", requestBody.StartDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := time.Parse("2006-01-02", requestBody.EndDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	suggestions, err := h.DividendSuggestionService.GenerateSuggestions(c.Request.Context(), portfolioID, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"created":     len(suggestions),
		"suggestions": suggestions,
	})
}
