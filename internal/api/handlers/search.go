package handlers

import (
	"encoding/base64"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/ai"
	"github.com/Supa-mustea/Visualfind-store/internal/config"
	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
)

// maxUploadBytes caps visual-search uploads at 10MB.
const maxUploadBytes = 10 << 20

// HandleImageUpload handles POST /api/upload. The uploaded file is kept under
// the uploads dir so the search-history entry can link back to it.
func HandleImageUpload(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No image file provided"})
			return
		}
		if file.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"message": "File too large"})
			return
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}

		filename := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(cfg.Uploads.Dir, filename)); err != nil {
			logger.Error("Failed to save uploaded image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process image upload"})
			return
		}

		products, err := repos.Product.List(c.Request.Context(), repository.ProductFilter{})
		if err != nil {
			logger.Error("Failed to list products for visual search", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process image upload"})
			return
		}

		// Mock visual search: every product matches with similarity 0.75-1.0
		results := make([]domain.SearchMatch, 0, len(products))
		for _, p := range products {
			results = append(results, domain.SearchMatch{
				Product:    *p,
				Similarity: 0.75 + rand.Float64()*0.25,
			})
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Similarity > results[j].Similarity
		})

		imageURL := "/uploads/" + filename
		if _, err := repos.SearchHistory.Add(c.Request.Context(), domain.NewSearchHistoryEntry{
			ImageURL:     imageURL,
			SearchDate:   time.Now().UTC().Format(time.RFC3339Nano),
			ResultsFound: len(results),
		}); err != nil {
			logger.Error("Failed to record search history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process image upload"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"results":       results,
			"uploadedImage": imageURL,
		})
	}
}

// HandleSearchHistory handles GET /api/search-history
func HandleSearchHistory(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := repos.SearchHistory.List(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list search history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch search history"})
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// HandleVisualSearch handles POST /api/visual-search. The upload is staged to
// a temp file only long enough to feed the AI analysis and is removed on
// every exit path.
func HandleVisualSearch(cfg *config.Config, aiSvc *ai.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No image file provided"})
			return
		}
		if file.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"message": "File too large"})
			return
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}

		tempPath := filepath.Join(cfg.Uploads.Dir, "visual-"+uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, tempPath); err != nil {
			logger.Error("Failed to stage visual-search image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process image"})
			return
		}
		defer func() {
			if err := os.Remove(tempPath); err != nil {
				logger.Warn("Failed to remove temp image", zap.String("path", tempPath), zap.Error(err))
			}
		}()

		raw, err := os.ReadFile(tempPath)
		if err != nil {
			logger.Error("Failed to read staged image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process image"})
			return
		}

		preferOpenAI := c.PostForm("useOpenAI") == "true"
		result, err := aiSvc.SourceProductsFromImage(c.Request.Context(), base64.StdEncoding.EncodeToString(raw), preferOpenAI)
		if err != nil {
			logger.Error("Visual search analysis failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// HandleSourceProducts handles POST /api/source-products
func HandleSourceProducts(sourcingSvc *sourcing.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Query string `json:"query"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "query is required"})
			return
		}

		products := sourcingSvc.SourceProducts(c.Request.Context(), req.Query)
		c.JSON(http.StatusOK, gin.H{
			"query":    req.Query,
			"products": products,
		})
	}
}
