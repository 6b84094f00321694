package domain

// Product is a catalog product. Monetary fields are decimal strings so that
// values round-trip unchanged between the store and the JSON boundary.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Brand            string   `json:"brand"`
	Price            string   `json:"price"`
	OriginalPrice    *string  `json:"originalPrice"`
	Category         string   `json:"category"`
	Description      *string  `json:"description"`
	ImageURL         string   `json:"imageUrl"`
	AdditionalImages []string `json:"additionalImages"`
	Rating           string   `json:"rating"`
	ReviewCount      int      `json:"reviewCount"`
	Specifications   []string `json:"specifications"`
	InStock          bool     `json:"inStock"`
}

// SearchMatch is a catalog product annotated with a visual-similarity score.
// It is a distinct type rather than an optional field on Product so callers
// can tell an annotated result from a plain catalog row.
type SearchMatch struct {
	Product
	Similarity float64 `json:"similarity"`
}

// SourcedProduct is a synthetic supplier offer produced by the sourcing
// engine. Unlike catalog products it carries float money because its values
// are derived, not stored.
type SourcedProduct struct {
	Name           string   `json:"name"`
	OriginalPrice  float64  `json:"originalPrice"` // landed cost: supplier base price + shipping
	SellingPrice   float64  `json:"sellingPrice"`  // landed cost plus the 10% markup
	Profit         float64  `json:"profit"`
	SupplierURL    string   `json:"supplierUrl"`
	SupplierName   string   `json:"supplierName"`
	Country        string   `json:"country"`
	ShippingCost   float64  `json:"shippingCost"`
	DeliveryDays   int      `json:"deliveryDays"`
	ImageURL       string   `json:"imageUrl"`
	Description    string   `json:"description"`
	Specifications []string `json:"specifications"`
}

// SearchHistoryEntry records one visual-search upload. Append-only.
type SearchHistoryEntry struct {
	ID           string `json:"id"`
	ImageURL     string `json:"imageUrl"`
	SearchDate   string `json:"searchDate"`
	ResultsFound int    `json:"resultsFound"`
}

// ChatMessage is one entry in the support-widget conversation. Append-only,
// ordered by timestamp for display.
type ChatMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	IsUser    bool   `json:"isUser"`
	Timestamp string `json:"timestamp"`
}

// DropshipOrder is a customer purchase forwarded to a supplier at a markup.
// profit is written as customerPrice - supplierPrice at creation time; the
// store does not recompute it.
type DropshipOrder struct {
	ID               string      `json:"id"`
	ProductID        string      `json:"productId"`
	ProductName      string      `json:"productName"`
	CustomerEmail    string      `json:"customerEmail"`
	CustomerPrice    string      `json:"customerPrice"`
	SupplierPrice    string      `json:"supplierPrice"`
	Profit           string      `json:"profit"`
	SupplierURL      string      `json:"supplierUrl"`
	OrderStatus      OrderStatus `json:"orderStatus"`
	TrackingNumber   *string     `json:"trackingNumber"`
	OrderDate        string      `json:"orderDate"`
	ExpectedDelivery *string     `json:"expectedDelivery"`
	Notes            *string     `json:"notes"`
}

// Supplier is a sourcing partner. Seed-only in the current flows.
type Supplier struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	APIKey          *string `json:"apiKey"`
	BaseURL         string  `json:"baseUrl"`
	Country         string  `json:"country"`
	ShippingCost    string  `json:"shippingCost"`
	AvgDeliveryDays int     `json:"avgDeliveryDays"`
	IsActive        bool    `json:"isActive"`
}
