package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fintrack-be/internal/middleware"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/service"
)

type TransactionController struct {
	transactionService service.TransactionService
	logger             *logrus.Logger
}

func NewTransactionController(transactionService service.TransactionService, logger *logrus.Logger) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
		logger:             logger,
	}
}

// Create handles POST /transactions. The body is a batch of transactions
// referencing categories by name; it is applied all-or-nothing.
func (tc *TransactionController) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing caller identity"})
		return
	}

	var reqs []models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one transaction is required"})
		return
	}

	if err := tc.transactionService.CreateBatch(c.Request.Context(), userID, reqs); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category not found"})
			return
		}
		tc.logger.WithError(err).Error("transaction batch insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transactions"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Transactions created successfully"})
}

// List handles GET /transactions
func (tc *TransactionController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing caller identity"})
		return
	}

	transactions, err := tc.transactionService.List(c.Request.Context(), userID)
	if err != nil {
		tc.logger.WithError(err).Error("transaction list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}

	if transactions == nil {
		transactions = []*models.TransactionWithCategory{}
	}
	c.JSON(http.StatusOK, transactions)
}
