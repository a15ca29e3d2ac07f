package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/phone-repair-api/config"
	"github.com/pr-poehali-dev/phone-repair-api/models"
)

// CreateServiceRequest represents the request body for creating a
// catalog entry. is_active defaults to true when absent.
type CreateServiceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Icon        *string  `json:"icon"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateServiceRequest is the patch value object for a full-field
// service update. The id is required; every other field is written
// unconditionally, absent ones as NULL.
type UpdateServiceRequest struct {
	ID          *uint    `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Icon        *string  `json:"icon"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"is_active"`
}

// ListServices handles GET /api/services - returns active catalog
// entries in ascending id order. With ?all=true inactive entries are
// included as well.
func ListServices(c *gin.Context) {
	db := config.GetDB()

	rows := []models.Service{}
	query := db.Order("id ASC")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch services",
			},
		})
		return
	}

	catalog := make([]models.ServiceResponse, 0, len(rows))
	for _, row := range rows {
		catalog = append(catalog, row.Response())
	}

	c.JSON(http.StatusOK, gin.H{"services": catalog})
}

// CreateService handles POST /api/services - adds a catalog entry,
// active by default
func CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Icon:        req.Icon,
		Category:    req.Category,
		IsActive:    &isActive,
	}

	db := config.GetDB()
	if err := db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create service",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"service_id": service.ID,
		"message":    "Service created",
	})
}

// UpdateService handles PUT /api/services - overwrites every field of
// the service with the given id in a single statement. Unknown ids
// succeed. There is no delete for services; the catalog only ever
// grows or deactivates.
func UpdateService(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Service id is required",
			},
		})
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"price":       req.Price,
		"icon":        req.Icon,
		"category":    req.Category,
		"is_active":   req.IsActive,
	}

	db := config.GetDB()
	if err := db.Model(&models.Service{}).Where("id = ?", *req.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update service",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service updated",
	})
}
