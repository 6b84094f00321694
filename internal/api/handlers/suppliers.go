package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/ai"
	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
)

// HandleListSuppliers handles GET /api/suppliers with optional ?active=true
func HandleListSuppliers(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			suppliers []*domain.Supplier
			err       error
		)
		if c.Query("active") == "true" {
			suppliers, err = repos.Supplier.ListActive(c.Request.Context())
		} else {
			suppliers, err = repos.Supplier.List(c.Request.Context())
		}
		if err != nil {
			logger.Error("Failed to list suppliers", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch suppliers"})
			return
		}
		c.JSON(http.StatusOK, suppliers)
	}
}

// HandleGenerateDescription handles POST /api/generate-description. Never
// fails hard: provider errors fall back to the canned template.
func HandleGenerateDescription(aiSvc *ai.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name and category are required"})
			return
		}

		description := aiSvc.GenerateProductDescription(c.Request.Context(), req.Name, req.Category)
		c.JSON(http.StatusOK, gin.H{"description": description})
	}
}
