package domain

// Insert types mirror the stored records minus the generated id. Optional
// fields left at their zero value pick up the store's defaults on insert.

type NewProduct struct {
	Name             string   `json:"name"`
	Brand            string   `json:"brand"`
	Price            string   `json:"price"`
	OriginalPrice    *string  `json:"originalPrice"`
	Category         string   `json:"category"`
	Description      *string  `json:"description"`
	ImageURL         string   `json:"imageUrl"`
	AdditionalImages []string `json:"additionalImages"`
	Rating           string   `json:"rating"` // default "0"
	ReviewCount      int      `json:"reviewCount"`
	Specifications   []string `json:"specifications"`
	InStock          *bool    `json:"inStock"` // default true
}

type NewSearchHistoryEntry struct {
	ImageURL     string `json:"imageUrl"`
	SearchDate   string `json:"searchDate"`
	ResultsFound int    `json:"resultsFound"`
}

type NewChatMessage struct {
	Content   string `json:"content"`
	IsUser    bool   `json:"isUser"`
	Timestamp string `json:"timestamp"`
}

type NewDropshipOrder struct {
	ProductID        string      `json:"productId"`
	ProductName      string      `json:"productName"`
	CustomerEmail    string      `json:"customerEmail"`
	CustomerPrice    string      `json:"customerPrice"`
	SupplierPrice    string      `json:"supplierPrice"`
	Profit           string      `json:"profit"`
	SupplierURL      string      `json:"supplierUrl"`
	OrderStatus      OrderStatus `json:"orderStatus"` // default pending
	TrackingNumber   *string     `json:"trackingNumber"`
	OrderDate        string      `json:"orderDate"`
	ExpectedDelivery *string     `json:"expectedDelivery"`
	Notes            *string     `json:"notes"`
}

type NewSupplier struct {
	Name            string  `json:"name"`
	APIKey          *string `json:"apiKey"`
	BaseURL         string  `json:"baseUrl"`
	Country         string  `json:"country"`
	ShippingCost    string  `json:"shippingCost"` // default "0"
	AvgDeliveryDays int     `json:"avgDeliveryDays"` // default 7
	IsActive        *bool   `json:"isActive"` // default true
}
