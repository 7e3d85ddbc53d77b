package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familia/internal/models"
)

// TypeOption is a transaction type with its display label.
type TypeOption struct {
	Value models.TransactionType `json:"value"`
	Label string                 `json:"label"`
}

// ReferenceResponse lists the values the entry form offers.
type ReferenceResponse struct {
	Categories []models.Category `json:"categories"`
	Members    []models.Member   `json:"members"`
	Types      []TypeOption      `json:"types"`
}

// GetReference returns the fixed categories, family members and types
// @Summary     Form reference data
// @Tags        reference
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} ReferenceResponse
// @Router      /reference [get]
func GetReference(c *gin.Context) {
	types := make([]TypeOption, 0, len(models.TransactionTypes))
	for _, t := range models.TransactionTypes {
		types = append(types, TypeOption{Value: t, Label: t.Label()})
	}

	c.JSON(http.StatusOK, ReferenceResponse{
		Categories: models.Categories,
		Members:    models.Members,
		Types:      types,
	})
}
