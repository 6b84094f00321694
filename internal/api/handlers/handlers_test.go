package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/ai"
	"github.com/Supa-mustea/Visualfind-store/internal/api/handlers"
	"github.com/Supa-mustea/Visualfind-store/internal/config"
	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/paystack"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/internal/repository/memory"
	"github.com/Supa-mustea/Visualfind-store/internal/service"
	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSupplier struct {
	orderErr error
}

func (f *fakeSupplier) Name() string { return "Fake Global" }

func (f *fakeSupplier) SearchProducts(ctx context.Context, query string) ([]sourcing.Offer, error) {
	return []sourcing.Offer{{
		ID:           "fake_001",
		Name:         query + " - Fake",
		Price:        100,
		ShippingCost: 10,
		DeliveryDays: 7,
		Country:      "USA",
	}}, nil
}

func (f *fakeSupplier) CreateOrder(ctx context.Context, productID string, customer sourcing.CustomerInfo) (*sourcing.OrderResult, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return &sourcing.OrderResult{
		OrderID:        "fake_42",
		TrackingNumber: "FAKE123456789",
		Status:         domain.OrderStatusProcessing,
	}, nil
}

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos := memory.NewRepositories(zap.NewNop())
	require.NoError(t, memory.Seed(context.Background(), repos))
	return repos
}

func imageUpload(t *testing.T, field, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestImageUploadRecordsHistory(t *testing.T) {
	repos := newTestRepos(t)
	cfg := &config.Config{Uploads: config.UploadsConfig{Dir: t.TempDir()}}

	router := gin.New()
	router.POST("/api/upload", handlers.HandleImageUpload(cfg, repos, zap.NewNop()))

	body, contentType := imageUpload(t, "image", "sofa.png", "image/png", []byte("not-a-real-png"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []struct {
			Name       string  `json:"name"`
			Similarity float64 `json:"similarity"`
		} `json:"results"`
		UploadedImage string `json:"uploadedImage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 16)
	assert.Contains(t, resp.UploadedImage, "/uploads/")

	for i, r := range resp.Results {
		assert.GreaterOrEqual(t, r.Similarity, 0.75)
		assert.LessOrEqual(t, r.Similarity, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, r.Similarity, resp.Results[i-1].Similarity)
		}
	}

	history, err := repos.SearchHistory.List(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 16, history[0].ResultsFound)
	assert.Equal(t, resp.UploadedImage, history[0].ImageURL)
}

func TestImageUploadTooLarge(t *testing.T) {
	repos := newTestRepos(t)
	cfg := &config.Config{Uploads: config.UploadsConfig{Dir: t.TempDir()}}

	router := gin.New()
	router.POST("/api/upload", handlers.HandleImageUpload(cfg, repos, zap.NewNop()))

	body, contentType := imageUpload(t, "image", "big.png", "image/png", make([]byte, 10<<20+1))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No history entry for a rejected upload
	history, err := repos.SearchHistory.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestImageUploadRejectsNonImage(t *testing.T) {
	repos := newTestRepos(t)
	cfg := &config.Config{Uploads: config.UploadsConfig{Dir: t.TempDir()}}

	router := gin.New()
	router.POST("/api/upload", handlers.HandleImageUpload(cfg, repos, zap.NewNop()))

	body, contentType := imageUpload(t, "image", "notes.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type fakeAIProvider struct {
	name     string
	response string
	err      error
}

func (f *fakeAIProvider) Name() string { return f.name }

func (f *fakeAIProvider) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestVisualSearchRemovesTempFile(t *testing.T) {
	uploadsDir := t.TempDir()
	cfg := &config.Config{Uploads: config.UploadsConfig{Dir: uploadsDir}}

	sourcingJSON := `{"searchQuery":"modern floor lamp","confidence":0.85,"products":[
		{"name":"Nordic Floor Lamp","supplierPrice":"40.00","price":"44.00","profit":"4.00",
		 "category":"Home & Garden","similarity":0.9,"country":"China","deliveryDays":14}]}`
	aiSvc := ai.NewServiceWithProviders(
		&fakeAIProvider{name: "anthropic", response: sourcingJSON},
		&fakeAIProvider{name: "openai", response: sourcingJSON},
		zap.NewNop(),
	)

	router := gin.New()
	router.POST("/api/visual-search", handlers.HandleVisualSearch(cfg, aiSvc, zap.NewNop()))

	body, contentType := imageUpload(t, "image", "lamp.jpg", "image/jpeg", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/visual-search", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		SearchQuery string `json:"searchQuery"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "modern floor lamp", resp.SearchQuery)

	// The staged image is removed once the analysis finishes
	entries, err := os.ReadDir(uploadsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVisualSearchRemovesTempFileOnProviderFailure(t *testing.T) {
	uploadsDir := t.TempDir()
	cfg := &config.Config{Uploads: config.UploadsConfig{Dir: uploadsDir}}

	aiSvc := ai.NewServiceWithProviders(
		&fakeAIProvider{name: "anthropic", err: errors.New("anthropic down")},
		&fakeAIProvider{name: "openai", err: errors.New("openai down")},
		zap.NewNop(),
	)

	router := gin.New()
	router.POST("/api/visual-search", handlers.HandleVisualSearch(cfg, aiSvc, zap.NewNop()))

	body, contentType := imageUpload(t, "image", "lamp.jpg", "image/jpeg", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/visual-search", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "AI services are currently unavailable")

	// Cleanup holds on the failure path too
	entries, err := os.ReadDir(uploadsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestChatPostSchedulesOneBotReply(t *testing.T) {
	repos := newTestRepos(t)
	replies := service.NewReplyScheduler(repos.ChatMessage, nil, 10*time.Millisecond, zap.NewNop())
	defer replies.Close()

	router := gin.New()
	router.POST("/api/chat", handlers.HandlePostChatMessage(repos, replies, zap.NewNop()))

	payload := `{"content":"hello","isUser":true,"timestamp":"` + time.Now().UTC().Format(time.RFC3339Nano) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var echoed domain.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echoed))
	assert.Equal(t, "hello", echoed.Content)
	assert.True(t, echoed.IsUser)

	// Seed welcome message + user message + exactly one delayed bot reply
	assert.Eventually(t, func() bool {
		messages, err := repos.ChatMessage.List(context.Background())
		return err == nil && len(messages) == 3
	}, time.Second, 5*time.Millisecond)

	messages, err := repos.ChatMessage.List(context.Background())
	require.NoError(t, err)
	last := messages[len(messages)-1]
	assert.False(t, last.IsUser)
	assert.NotEmpty(t, last.Content)
}

func TestChatPostBotMessageSchedulesNothing(t *testing.T) {
	repos := newTestRepos(t)
	replies := service.NewReplyScheduler(repos.ChatMessage, nil, 10*time.Millisecond, zap.NewNop())
	defer replies.Close()

	router := gin.New()
	router.POST("/api/chat", handlers.HandlePostChatMessage(repos, replies, zap.NewNop()))

	payload := `{"content":"I am a bot","isUser":false}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	time.Sleep(50 * time.Millisecond)
	messages, err := repos.ChatMessage.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, messages, 2) // welcome + posted bot message, no extra reply
}

func TestPurchaseEndToEnd(t *testing.T) {
	repos := newTestRepos(t)
	sourcingSvc := sourcing.NewServiceWithSuppliers([]sourcing.SupplierClient{&fakeSupplier{}}, zap.NewNop())

	router := gin.New()
	router.POST("/api/purchase", handlers.HandlePurchase(repos, sourcingSvc, zap.NewNop()))
	router.GET("/api/orders/:id", handlers.HandleGetOrder(repos, zap.NewNop()))

	payload := `{
		"productId": "prod-1",
		"productName": "Nordic Floor Lamp",
		"customerEmail": "buyer@example.com",
		"customerAddress": "12 Lamp Street",
		"originalPrice": 100,
		"sellingPrice": 110,
		"supplierUrl": "https://api.fake.example.com/product/fake_001"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/purchase", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success        bool                 `json:"success"`
		Order          domain.DropshipOrder `json:"order"`
		TrackingNumber string               `json:"trackingNumber"`
		Profit         string               `json:"profit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "FAKE123456789", resp.TrackingNumber)
	assert.Equal(t, "10.00", resp.Profit) // sellingPrice minus originalPrice
	assert.Equal(t, domain.OrderStatusProcessing, resp.Order.OrderStatus)

	// Order is retrievable with the advanced status
	getReq := httptest.NewRequest(http.MethodGet, "/api/orders/"+resp.Order.ID, nil)
	getW := httptest.NewRecorder()
	router.ServeHTTP(getW, getReq)
	require.Equal(t, http.StatusOK, getW.Code)

	var fetched domain.DropshipOrder
	require.NoError(t, json.Unmarshal(getW.Body.Bytes(), &fetched))
	assert.Equal(t, domain.OrderStatusProcessing, fetched.OrderStatus)
	require.NotNil(t, fetched.TrackingNumber)
	assert.Equal(t, "FAKE123456789", *fetched.TrackingNumber)
}

func TestPurchaseValidation(t *testing.T) {
	repos := newTestRepos(t)
	sourcingSvc := sourcing.NewServiceWithSuppliers([]sourcing.SupplierClient{&fakeSupplier{}}, zap.NewNop())

	router := gin.New()
	router.POST("/api/purchase", handlers.HandlePurchase(repos, sourcingSvc, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/api/purchase", bytes.NewBufferString(`{"productId":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSourceProductsRequiresQuery(t *testing.T) {
	sourcingSvc := sourcing.NewServiceWithSuppliers([]sourcing.SupplierClient{&fakeSupplier{}}, zap.NewNop())

	router := gin.New()
	router.POST("/api/source-products", handlers.HandleSourceProducts(sourcingSvc, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/api/source-products", bytes.NewBufferString(`{"query":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInitializePaymentCreatesPendingOrder(t *testing.T) {
	repos := newTestRepos(t)

	var captured map[string]interface{}
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"status":true,"message":"ok","data":{
			"authorization_url":"https://checkout.paystack.com/xyz",
			"access_code":"xyz","reference":"ref_test"}}`))
	}))
	defer gateway.Close()

	client := paystack.NewClient(config.PaystackConfig{SecretKey: "sk_test", BaseURL: gateway.URL}, zap.NewNop())

	router := gin.New()
	router.POST("/api/initialize-payment", handlers.HandleInitializePayment(repos, client, zap.NewNop()))

	products, err := repos.Product.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	productID := products[0].ID

	payload := `{"email":"buyer@example.com","productId":"` + productID + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/initialize-payment", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AuthorizationURL string `json:"authorizationUrl"`
		Reference        string `json:"reference"`
		OrderID          string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.paystack.com/xyz", resp.AuthorizationURL)
	require.NotEmpty(t, resp.OrderID)

	order, err := repos.DropshipOrder.GetByID(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, "buyer@example.com", order.CustomerEmail)

	metadata := captured["metadata"].(map[string]interface{})
	assert.Equal(t, resp.OrderID, metadata["orderId"])
	assert.Equal(t, productID, metadata["productId"])
}

func TestInitializePaymentValidation(t *testing.T) {
	repos := newTestRepos(t)
	client := paystack.NewClient(config.PaystackConfig{SecretKey: "sk_test"}, zap.NewNop())

	router := gin.New()
	router.POST("/api/initialize-payment", handlers.HandleInitializePayment(repos, client, zap.NewNop()))

	t.Run("invalid email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/initialize-payment",
			bytes.NewBufferString(`{"email":"nope","productId":"p1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/initialize-payment",
			bytes.NewBufferString(`{"email":"buyer@example.com","productId":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPaymentCallbackAdvancesOrder(t *testing.T) {
	repos := newTestRepos(t)
	sourcingSvc := sourcing.NewServiceWithSuppliers([]sourcing.SupplierClient{&fakeSupplier{}}, zap.NewNop())

	order, err := repos.DropshipOrder.Create(context.Background(), domain.NewDropshipOrder{
		ProductID:     "prod-1",
		ProductName:   "Nordic Floor Lamp",
		CustomerEmail: "buyer@example.com",
		CustomerPrice: "110.00",
		SupplierPrice: "100.00",
		Profit:        "10.00",
		OrderDate:     time.Now().UTC().Format(time.RFC3339Nano),
	})
	require.NoError(t, err)

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"ok","data":{
			"status":"success","reference":"ref_test","amount":11000,
			"customer":{"email":"buyer@example.com","first_name":"Ada","last_name":"Buyer"},
			"metadata":{"orderId":"` + order.ID + `","productId":"prod-1"}}}`))
	}))
	defer gateway.Close()

	client := paystack.NewClient(config.PaystackConfig{SecretKey: "sk_test", BaseURL: gateway.URL}, zap.NewNop())

	router := gin.New()
	router.POST("/api/payment-callback", handlers.HandlePaymentCallback(repos, client, sourcingSvc, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/api/payment-callback", bytes.NewBufferString(`{"reference":"ref_test"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, err := repos.DropshipOrder.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, updated.OrderStatus)
	require.NotNil(t, updated.TrackingNumber)
	assert.Equal(t, "FAKE123456789", *updated.TrackingNumber)
}

func TestListSuppliersActiveFilter(t *testing.T) {
	repos := newTestRepos(t)

	inactive := false
	_, err := repos.Supplier.Add(context.Background(), domain.NewSupplier{
		Name:     "Dormant Supplier",
		BaseURL:  "https://api.dormant.example.com",
		Country:  "France",
		IsActive: &inactive,
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/api/suppliers", handlers.HandleListSuppliers(repos, zap.NewNop()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/suppliers", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var all []domain.Supplier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 4)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/suppliers?active=true", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var active []domain.Supplier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	assert.Len(t, active, 3)
}

func TestProductRoutes(t *testing.T) {
	repos := newTestRepos(t)

	router := gin.New()
	router.GET("/api/products", handlers.HandleListProducts(repos, zap.NewNop()))
	router.GET("/api/products/:id", handlers.HandleGetProduct(repos, zap.NewNop()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products?category=furniture&maxPrice=1000", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Furniture", p.Category)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/"+products[0].ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
