package handlers

import (
	stderrors "errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/paystack"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

// supplierShare strips the resale markup off a catalog price to estimate the
// supplier cost recorded on payment-initiated orders.
func supplierShare(price float64) float64 {
	return math.Round(price/1.1*100) / 100
}

// HandleInitializePayment handles POST /api/initialize-payment. Creates the
// pending dropship order up front so the gateway metadata can carry its id
// through the redirect round trip.
func HandleInitializePayment(repos *repository.Repositories, client *paystack.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email     string `json:"email"`
			ProductID string `json:"productId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment request"})
			return
		}
		if !strings.Contains(req.Email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A valid email is required"})
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId is required"})
			return
		}

		product, err := repos.Product.GetByID(c.Request.Context(), req.ProductID)
		if err != nil {
			var notFound *errors.ErrNotFound
			if stderrors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logger.Error("Failed to fetch product for payment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to initialize payment"})
			return
		}

		price, err := strconv.ParseFloat(product.Price, 64)
		if err != nil {
			logger.Error("Product has unparseable price", zap.String("product_id", product.ID), zap.String("price", product.Price))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to initialize payment"})
			return
		}
		supplierPrice := supplierShare(price)
		profit := math.Round((price-supplierPrice)*100) / 100

		order, err := repos.DropshipOrder.Create(c.Request.Context(), domain.NewDropshipOrder{
			ProductID:     product.ID,
			ProductName:   product.Name,
			CustomerEmail: req.Email,
			CustomerPrice: product.Price,
			SupplierPrice: strconv.FormatFloat(supplierPrice, 'f', 2, 64),
			Profit:        strconv.FormatFloat(profit, 'f', 2, 64),
			OrderStatus:   domain.OrderStatusPending,
			OrderDate:     time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			logger.Error("Failed to create pending order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to initialize payment"})
			return
		}

		data, err := client.InitializeTransaction(c.Request.Context(), paystack.InitializeRequest{
			Email:  req.Email,
			Amount: price,
			Metadata: map[string]interface{}{
				"orderId":       order.ID,
				"productId":     product.ID,
				"productName":   product.Name,
				"supplierPrice": order.SupplierPrice,
				"profit":        order.Profit,
			},
		})
		if err != nil {
			if updateErr := repos.DropshipOrder.UpdateStatus(c.Request.Context(), order.ID, domain.OrderStatusFailed, nil); updateErr != nil {
				logger.Error("Failed to mark order as failed", zap.String("order_id", order.ID), zap.Error(updateErr))
			}
			logger.Error("Payment initialization failed", zap.String("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"authorizationUrl": data.AuthorizationURL,
			"accessCode":       data.AccessCode,
			"reference":        data.Reference,
			"orderId":          order.ID,
		})
	}
}

// HandleVerifyPayment handles POST /api/verify-payment
func HandleVerifyPayment(client *paystack.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Reference string `json:"reference"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Reference) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "reference is required"})
			return
		}

		tx, err := client.VerifyTransaction(c.Request.Context(), req.Reference)
		if err != nil {
			logger.Error("Payment verification failed", zap.String("reference", req.Reference), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

// HandlePaymentCallback handles POST /api/payment-callback. The reference is
// re-verified against the gateway; a successful charge fires automatic order
// processing for the order named in the transaction metadata.
func HandlePaymentCallback(repos *repository.Repositories, client *paystack.Client, sourcingSvc *sourcing.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Reference string `json:"reference"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Reference) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "reference is required"})
			return
		}

		tx, err := client.VerifyTransaction(c.Request.Context(), req.Reference)
		if err != nil {
			logger.Error("Callback verification failed", zap.String("reference", req.Reference), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if tx.Status != "success" {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"status":  tx.Status,
			})
			return
		}

		orderID, _ := tx.Metadata["orderId"].(string)
		productID, _ := tx.Metadata["productId"].(string)
		if orderID == "" || productID == "" {
			logger.Warn("Verified transaction carries no order metadata", zap.String("reference", req.Reference))
			c.JSON(http.StatusOK, gin.H{"success": true, "status": tx.Status})
			return
		}

		result, err := sourcingSvc.ProcessAutomaticOrder(c.Request.Context(), productID, sourcing.CustomerInfo{
			Name:  strings.TrimSpace(tx.Customer.FirstName + " " + tx.Customer.LastName),
			Email: tx.Customer.Email,
		})
		if err != nil {
			if updateErr := repos.DropshipOrder.UpdateStatus(c.Request.Context(), orderID, domain.OrderStatusFailed, nil); updateErr != nil {
				logger.Error("Failed to mark order as failed", zap.String("order_id", orderID), zap.Error(updateErr))
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if err := repos.DropshipOrder.UpdateStatus(c.Request.Context(), orderID, domain.OrderStatusProcessing, &result.TrackingNumber); err != nil {
			logger.Error("Failed to advance order after payment", zap.String("order_id", orderID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"orderId":           orderID,
			"orderStatus":       domain.OrderStatusProcessing,
			"trackingNumber":    result.TrackingNumber,
			"estimatedDelivery": result.EstimatedDelivery,
		})
	}
}

// HandleListTransactions handles GET /api/transactions
func HandleListTransactions(client *paystack.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := paystack.ListTransactionsParams{
			From:   c.Query("from"),
			To:     c.Query("to"),
			Status: c.Query("status"),
		}
		if v := c.Query("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				params.Page = n
			}
		}
		if v := c.Query("perPage"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				params.PerPage = n
			}
		}

		transactions, err := client.ListTransactions(c.Request.Context(), params)
		if err != nil {
			logger.Error("Failed to list transactions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"transactions": transactions,
			"count":        len(transactions),
		})
	}
}
