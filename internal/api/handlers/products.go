package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

// HandleListProducts handles GET /api/products with optional filters
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := repository.ProductFilter{
			Category: c.Query("category"),
			Brand:    c.Query("brand"),
			Search:   c.Query("search"),
		}
		if v := c.Query("minPrice"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				filter.MinPrice = &f
			}
		}
		if v := c.Query("maxPrice"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				filter.MaxPrice = &f
			}
		}

		products, err := repos.Product.List(c.Request.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// HandleGetProduct handles GET /api/products/:id
func HandleGetProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := repos.Product.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			var notFound *errors.ErrNotFound
			if stderrors.As(err, &notFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			logger.Error("Failed to fetch product", zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
