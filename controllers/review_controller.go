package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/phone-repair-api/config"
	"github.com/pr-poehali-dev/phone-repair-api/models"
)

// CreateReviewRequest represents the request body for submitting a review
type CreateReviewRequest struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	PhoneModel   string `json:"phone_model"`
}

// ModerateReviewRequest represents the request body for toggling a
// review's publish visibility
type ModerateReviewRequest struct {
	ID          *uint `json:"id"`
	IsPublished *bool `json:"is_published"`
}

// ListReviews handles GET /api/reviews - returns published reviews,
// newest first, capped at 20. With ?all=true the moderation queue is
// included and the cap is lifted.
func ListReviews(c *gin.Context) {
	db := config.GetDB()

	reviews := []models.Review{}
	query := db.Order("created_at DESC")
	if c.Query("all") != "true" {
		query = query.Where("is_published = ?", true).Limit(20)
	}
	if err := query.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch reviews",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// CreateReview handles POST /api/reviews - stores a new review,
// unpublished until an operator moderates it
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
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

	review := models.Review{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		PhoneModel:   req.PhoneModel,
		IsPublished:  false,
	}

	db := config.GetDB()
	if err := db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create review",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"review_id": review.ID,
		"message":   "Review submitted for moderation",
	})
}

// ModerateReview handles PUT /api/reviews - overwrites the publish flag
// of the review with the given id. Unknown ids succeed.
func ModerateReview(c *gin.Context) {
	var req ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil || req.IsPublished == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Review id and is_published are required",
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Model(&models.Review{}).Where("id = ?", *req.ID).Update("is_published", *req.IsPublished).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update review",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review status updated",
	})
}

// DeleteReview handles DELETE /api/reviews?id=n - deletes at most one
// review. Deleting an id that does not exist is a successful no-op.
func DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Review ID is required",
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Delete(&models.Review{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete review",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review deleted",
	})
}
