package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pr-poehali-dev/phone-repair-api/config"
	"github.com/pr-poehali-dev/phone-repair-api/models"
	"github.com/pr-poehali-dev/phone-repair-api/services"
)

// CreateOrderRequest represents the request body for creating an order.
// Fields are read permissively: absent optional fields are stored as NULL.
type CreateOrderRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	ServiceID     *uint   `json:"service_id"`
	PhoneModel    string  `json:"phone_model"`
	IMEI          *string `json:"imei"`
	Message       *string `json:"message"`
}

// UpdateOrderStatusRequest represents the request body for an order
// status update. Both fields are required; the status value itself is
// an open enumeration and is not transition-checked.
type UpdateOrderStatusRequest struct {
	ID     *uint   `json:"id"`
	Status *string `json:"status"`
}

// ListOrders handles GET /api/orders - returns all orders, newest first,
// with the linked service title when one is set
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	orders := []models.OrderWithService{}
	err := db.Table("orders").
		Select("orders.id, orders.customer_name, orders.customer_phone, orders.customer_email, " +
			"orders.phone_model, orders.imei, orders.message, orders.status, orders.created_at, " +
			"services.title AS service_title").
		Joins("LEFT JOIN services ON orders.service_id = services.id").
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CreateOrder handles POST /api/orders - persists a new order and then
// alerts the operator channel. The notification is best effort: the
// response is built solely from the committed row, whatever the
// notifier does.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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

	order := models.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     req.ServiceID,
		PhoneModel:    req.PhoneModel,
		IMEI:          req.IMEI,
		Message:       req.Message,
		Status:        "new",
	}

	db := config.GetDB()
	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	// The row is committed at this point. Fire the notification and
	// discard its outcome.
	if notifier := services.GetNotifier(); notifier != nil {
		notifier.NotifyNewOrder(order.ID, order.CustomerName, order.CustomerPhone, order.PhoneModel)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"order_id": order.ID,
		"message":  "Order created successfully",
	})
}

// UpdateOrderStatus handles PUT /api/orders - unconditionally overwrites
// the status of the order with the given id. Unknown ids succeed.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil || req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Order id and status are required",
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Model(&models.Order{}).Where("id = ?", *req.ID).Update("status", *req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order status",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated",
	})
}

// DeleteOrder handles DELETE /api/orders?id=n - deletes at most one
// order. Deleting an id that does not exist is a successful no-op.
func DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Order ID is required",
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Delete(&models.Order{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted",
	})
}
