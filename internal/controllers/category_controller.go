package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fintrack-be/internal/entities"
	"fintrack-be/internal/middleware"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/service"
)

type CategoryController struct {
	categoryService service.CategoryService
	logger          *logrus.Logger
}

func NewCategoryController(categoryService service.CategoryService, logger *logrus.Logger) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}
}

// Create handles POST /categories. The body is a batch; it is applied
// all-or-nothing.
func (cc *CategoryController) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing caller identity"})
		return
	}

	var reqs []models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one category is required"})
		return
	}

	created, err := cc.categoryService.CreateBatch(c.Request.Context(), userID, reqs)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate category"})
			return
		}
		cc.logger.WithError(err).Error("category batch insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create categories"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Categories created successfully",
		"categories": created,
	})
}

// List handles GET /categories
func (cc *CategoryController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing caller identity"})
		return
	}

	categories, err := cc.categoryService.List(c.Request.Context(), userID)
	if err != nil {
		cc.logger.WithError(err).Error("category list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	if categories == nil {
		categories = []*entities.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// Get handles GET /categories/:id
func (cc *CategoryController) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing caller identity"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	category, err := cc.categoryService.Get(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		cc.logger.WithError(err).Error("category fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /categories/:id. A category owned by someone else
// gets the same 404 as a missing one.
func (cc *CategoryController) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "missing caller identity"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := cc.categoryService.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		cc.logger.WithError(err).Error("category delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
