package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/internal/service"
	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

// PurchaseRequest is the POST /api/purchase body. originalPrice is the
// supplier landed cost, sellingPrice what the customer pays.
type PurchaseRequest struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerName    string  `json:"customerName"`
	CustomerAddress string  `json:"customerAddress"`
	OriginalPrice   float64 `json:"originalPrice"`
	SellingPrice    float64 `json:"sellingPrice"`
	SupplierURL     string  `json:"supplierUrl"`
	Notes           *string `json:"notes"`
}

// HandlePurchase handles POST /api/purchase
func HandlePurchase(repos *repository.Repositories, sourcingSvc *sourcing.Service, logger *zap.Logger) gin.HandlerFunc {
	purchases := service.NewPurchaseService(repos, sourcingSvc, logger)

	return func(c *gin.Context) {
		var req PurchaseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid purchase request"})
			return
		}

		result, err := purchases.PlaceOrder(c.Request.Context(), service.PurchaseRequest{
			ProductID:       req.ProductID,
			ProductName:     req.ProductName,
			CustomerEmail:   req.CustomerEmail,
			CustomerName:    req.CustomerName,
			ShippingAddress: req.CustomerAddress,
			CustomerPrice:   req.SellingPrice,
			SupplierPrice:   req.OriginalPrice,
			SupplierURL:     req.SupplierURL,
			Notes:           req.Notes,
		})
		if err != nil {
			var validation *errors.ErrValidation
			if stderrors.As(err, &validation) {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": validation.Message,
					"fields":  validation.Fields,
				})
				return
			}
			logger.Error("Purchase failed", zap.String("product_id", req.ProductID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"order":             result.Order,
			"trackingNumber":    result.TrackingNumber,
			"estimatedDelivery": result.EstimatedDelivery,
			"profit":            result.Order.Profit,
		})
	}
}

// HandleListOrders handles GET /api/orders
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repos.DropshipOrder.List(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// HandleGetOrder handles GET /api/orders/:id
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := repos.DropshipOrder.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			var notFound *errors.ErrNotFound
			if stderrors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			logger.Error("Failed to fetch order", zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
