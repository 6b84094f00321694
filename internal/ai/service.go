package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/config"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

const sourcingPrompt = `Analyze this product image and find 3-5 similar products from global suppliers. For each product, provide:
- Product name
- Estimated supplier price (competitive market price)
- Suggested retail price (supplier price + 10% profit margin)
- Product category (Mobile Phones, Laptops, Electronics, Clothing, Accessories, Furniture, Home & Garden, etc.)
- Brief description
- Estimated similarity score (0.0-1.0)
- Likely supplier country
- Estimated delivery days

Return as JSON with this structure:
{
  "searchQuery": "descriptive search term",
  "confidence": 0.85,
  "products": [
    {
      "name": "Product Name",
      "supplierPrice": "100.00",
      "price": "110.00",
      "profit": "10.00",
      "category": "Electronics",
      "description": "Product description",
      "similarity": 0.9,
      "country": "China",
      "deliveryDays": 14,
      "supplierUrl": "https://example-supplier.com/product",
      "imageUrl": "https://images.unsplash.com/photo-example"
    }
  ]
}`

const describeImagePrompt = "Analyze this image and provide a detailed product search query that would help find similar items. Focus on the main product, its style, material, color, and key features. Provide just the search query, nothing else."

// fallbackSearchPhrase is returned when no provider can describe an image.
const fallbackSearchPhrase = "furniture home decor"

// SourcedCandidate is one AI-fabricated supplier offer. Prices are decimal
// strings, matching the JSON shape the prompt requests.
type SourcedCandidate struct {
	Name          string  `json:"name"`
	SupplierPrice string  `json:"supplierPrice"`
	Price         string  `json:"price"`
	Profit        string  `json:"profit"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Similarity    float64 `json:"similarity"`
	Country       string  `json:"country"`
	DeliveryDays  int     `json:"deliveryDays"`
	SupplierURL   string  `json:"supplierUrl"`
	ImageURL      string  `json:"imageUrl"`
}

// ProductSourcingResult is the structured payload the sourcing prompt asks
// the provider for.
type ProductSourcingResult struct {
	SearchQuery string             `json:"searchQuery"`
	Confidence  float64            `json:"confidence"`
	Products    []SourcedCandidate `json:"products"`
}

// Service delegates image understanding and text generation to hosted
// providers. Operations that accept a preference flag try the preferred
// provider first and fall through to the other on failure.
type Service struct {
	anthropic Provider
	openAI    Provider
	logger    *zap.Logger
}

// NewService creates the AI gateway from configuration.
func NewService(cfg config.AIConfig, logger *zap.Logger) *Service {
	return &Service{
		anthropic: NewAnthropicProvider(cfg.AnthropicAPIKey, logger),
		openAI:    NewOpenAIProvider(cfg.OpenAIAPIKey, logger),
		logger:    logger,
	}
}

// NewServiceWithProviders creates the gateway with explicit providers.
func NewServiceWithProviders(anthropic, openAI Provider, logger *zap.Logger) *Service {
	return &Service{anthropic: anthropic, openAI: openAI, logger: logger}
}

// complete walks the provider chain: first success wins, all failures are
// aggregated into a single services-unavailable error.
func (s *Service) complete(ctx context.Context, req CompletionRequest, providers []Provider) (string, error) {
	var errs error
	for _, p := range providers {
		out, err := p.Complete(ctx, req)
		if err == nil {
			return out, nil
		}
		s.logger.Warn("AI provider failed",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return "", &errors.ErrProvidersUnavailable{Err: errs}
}

// SourceProductsFromImage asks a vision-capable provider for 3-5 similar
// supplier offers for the image. preferOpenAI only changes the order the
// providers are tried in.
func (s *Service) SourceProductsFromImage(ctx context.Context, imageBase64 string, preferOpenAI bool) (*ProductSourcingResult, error) {
	providers := []Provider{s.anthropic, s.openAI}
	if preferOpenAI {
		providers = []Provider{s.openAI, s.anthropic}
	}

	text, err := s.complete(ctx, CompletionRequest{
		Prompt:       sourcingPrompt,
		ImageBase64:  imageBase64,
		MaxTokens:    2000,
		JSONResponse: true,
	}, providers)
	if err != nil {
		return nil, err
	}

	// No structural validation beyond the parse: malformed provider output
	// surfaces as a parse failure.
	var result ProductSourcingResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse sourcing response: %w", err)
	}
	return &result, nil
}

// GenerateProductDescription produces short marketing copy. On provider
// failure it falls back to a local template rather than erroring.
func (s *Service) GenerateProductDescription(ctx context.Context, name, category string) string {
	prompt := fmt.Sprintf("Generate a compelling product description for: %s in the %s category. Make it engaging for dropshipping customers, highlighting key features and benefits. Keep it under 200 words.", name, category)

	text, err := s.complete(ctx, CompletionRequest{Prompt: prompt, MaxTokens: 500}, []Provider{s.anthropic})
	if err != nil {
		s.logger.Warn("Description generation failed, using fallback", zap.Error(err))
		return fmt.Sprintf("Premium %s - High-quality %s product with excellent features and reliable performance. Perfect for modern lifestyle needs.", name, strings.ToLower(category))
	}
	return strings.TrimSpace(text)
}

// DescribeImage turns an uploaded image into a short search phrase, with a
// fixed fallback when the provider is unavailable.
func (s *Service) DescribeImage(ctx context.Context, imageBase64 string) string {
	text, err := s.complete(ctx, CompletionRequest{
		Prompt:      describeImagePrompt,
		ImageBase64: imageBase64,
		MaxTokens:   500,
	}, []Provider{s.anthropic})
	if err != nil {
		s.logger.Warn("Image analysis failed, using fallback phrase", zap.Error(err))
		return fallbackSearchPhrase
	}
	return strings.TrimSpace(text)
}

// RecommendProducts suggests related product categories for a customer
// query. Callers decide what to do when no provider is available.
func (s *Service) RecommendProducts(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(`Based on this customer query: %q, suggest 3-5 related product categories that might interest them. Focus on items that are commonly available for international shipping and dropshipping. Format as a simple list.`, query)

	text, err := s.complete(ctx, CompletionRequest{Prompt: prompt, MaxTokens: 1000}, []Provider{s.anthropic, s.openAI})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
