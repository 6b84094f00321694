package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
)

func str(s string) *string { return &s }

// Seed populates the store with the static sample catalog, the support bot's
// welcome message, a few historical orders and the global supplier registry.
// Called once at startup; the data resets on every restart.
func Seed(ctx context.Context, repos *repository.Repositories) error {
	if err := seedProducts(ctx, repos.Product); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedChatHistory(ctx, repos.ChatMessage); err != nil {
		return fmt.Errorf("seed chat history: %w", err)
	}
	if err := seedDropshipOrders(ctx, repos.DropshipOrder); err != nil {
		return fmt.Errorf("seed dropship orders: %w", err)
	}
	if err := seedSuppliers(ctx, repos.Supplier); err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}
	return nil
}

func seedProducts(ctx context.Context, products repository.ProductRepository) error {
	sampleProducts := []domain.NewProduct{
		{
			Name:          "Modern L-Shaped Sectional Sofa",
			Brand:         "West Elm",
			Price:         "1299.00",
			OriginalPrice: str("1599.00"),
			Category:      "Furniture",
			Description:   str("This modern L-shaped sectional sofa combines comfort and style, perfect for contemporary living spaces. Features premium cushioning and durable fabric upholstery."),
			ImageURL:      "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			AdditionalImages: []string{
				"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&h=150",
			},
			Rating:      "4.8",
			ReviewCount: 127,
			Specifications: []string{
				"Dimensions: 108\" W x 68\" D x 32\" H",
				"Material: 100% Polyester fabric",
				"Frame: Kiln-dried hardwood",
				"Warranty: 5 years",
			},
		},
		{
			Name:        "Premium Leather Armchair",
			Brand:       "CB2",
			Price:       "899.00",
			Category:    "Furniture",
			Description: str("Elegant leather armchair with premium craftsmanship and timeless design."),
			ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:      "4.5",
			ReviewCount: 89,
			Specifications: []string{
				"Dimensions: 32\" W x 34\" D x 30\" H",
				"Material: Genuine leather",
				"Frame: Solid oak",
			},
		},
		{
			Name:        "Mid-Century Coffee Table",
			Brand:       "Article",
			Price:       "449.00",
			Category:    "Furniture",
			Description: str("Clean-lined coffee table with mid-century modern aesthetic."),
			ImageURL:    "https://pixabay.com/get/gca232eaae06e0b8deb774e51b2f0afcb739b3ae886630effe8a79ac884f5ba4b99619cfc82cac2bdcf125278b6a929d6f91519ba8fce4a9a10ee40d1c24f4bbf_1280.jpg",
			Rating:      "4.9",
			ReviewCount: 203,
			Specifications: []string{
				"Dimensions: 48\" W x 24\" D x 16\" H",
				"Material: Walnut veneer",
				"Style: Mid-century modern",
			},
		},
		{
			Name:        "Brass Pendant Light",
			Brand:       "West Elm",
			Price:       "199.00",
			Category:    "Lighting",
			Description: str("Stylish brass pendant light perfect for dining areas and kitchens."),
			ImageURL:    "https://images.unsplash.com/photo-1524484485831-a92ffc0de03f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:      "4.3",
			ReviewCount: 156,
			Specifications: []string{
				"Dimensions: 12\" Diameter x 8\" H",
				"Material: Brass finish",
				"Bulb: E26 (not included)",
			},
		},
		{
			Name:        "Industrial Bookshelf",
			Brand:       "CB2",
			Price:       "599.00",
			Category:    "Furniture",
			Description: str("Modern industrial-style bookshelf with metal frame and wood shelves."),
			ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:      "4.2",
			ReviewCount: 74,
			Specifications: []string{
				"Dimensions: 72\" H x 36\" W x 12\" D",
				"Material: Metal frame, wood shelves",
				"Style: Industrial modern",
			},
		},
		{
			Name:        "Walnut Dining Table",
			Brand:       "Article",
			Price:       "849.00",
			Category:    "Furniture",
			Description: str("Elegant walnut dining table perfect for modern dining rooms."),
			ImageURL:    "https://pixabay.com/get/gc39745c921f637f49336c36b1417ec8045569cd8e06522e138d81d687efd1b60c03d102d0e468bd7c254609fef099c4562d1b58f5cfc004a0c5f41c2d8843322_1280.jpg",
			Rating:      "4.7",
			ReviewCount: 192,
			Specifications: []string{
				"Dimensions: 72\" W x 36\" D x 30\" H",
				"Material: Solid walnut",
				"Seats: 6-8 people",
			},
		},
		{
			Name:          "iPhone 15 Pro Max",
			Brand:         "Apple",
			Price:         "1199.00",
			OriginalPrice: str("1299.00"),
			Category:      "Mobile Phones",
			Description:   str("Latest iPhone with A17 Pro chip, titanium design, and advanced camera system. Perfect for photography and gaming."),
			ImageURL:      "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.9",
			ReviewCount:   1543,
			Specifications: []string{
				"Display: 6.7-inch Super Retina XDR",
				"Chip: A17 Pro",
				"Storage: 256GB",
				"Camera: 48MP Main + 12MP Ultra Wide",
				"Battery: All-day battery life",
			},
		},
		{
			Name:          "Samsung Galaxy S24 Ultra",
			Brand:         "Samsung",
			Price:         "1099.00",
			OriginalPrice: str("1199.00"),
			Category:      "Mobile Phones",
			Description:   str("Premium Android smartphone with S Pen, advanced cameras, and powerful performance for productivity and creativity."),
			ImageURL:      "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.8",
			ReviewCount:   1287,
			Specifications: []string{
				"Display: 6.8-inch Dynamic AMOLED 2X",
				"Processor: Snapdragon 8 Gen 3",
				"Storage: 256GB",
				"Camera: 200MP Main + Ultra Wide + Telephoto",
				"S Pen: Built-in stylus",
			},
		},
		{
			Name:          "MacBook Pro 14-inch M3",
			Brand:         "Apple",
			Price:         "1999.00",
			OriginalPrice: str("2199.00"),
			Category:      "Laptops",
			Description:   str("Powerful laptop with M3 chip, stunning Liquid Retina XDR display, and all-day battery life for professionals."),
			ImageURL:      "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.8",
			ReviewCount:   892,
			Specifications: []string{
				"Chip: Apple M3",
				"Memory: 16GB unified memory",
				"Storage: 512GB SSD",
				"Display: 14.2-inch Liquid Retina XDR",
				"Battery: Up to 18 hours",
			},
		},
		{
			Name:          "Dell XPS 13 Plus",
			Brand:         "Dell",
			Price:         "1299.00",
			OriginalPrice: str("1499.00"),
			Category:      "Laptops",
			Description:   str("Ultra-thin laptop with Intel Core i7, premium build quality, and innovative design for modern professionals."),
			ImageURL:      "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.6",
			ReviewCount:   567,
			Specifications: []string{
				"Processor: Intel Core i7-1360P",
				"Memory: 16GB LPDDR5",
				"Storage: 512GB SSD",
				"Display: 13.4-inch InfinityEdge",
				"Weight: 2.73 lbs",
			},
		},
		{
			Name:          "Sony WH-1000XM5 Headphones",
			Brand:         "Sony",
			Price:         "399.99",
			OriginalPrice: str("449.99"),
			Category:      "Electronics",
			Description:   str("Industry-leading noise canceling wireless headphones with exceptional sound quality and 30-hour battery life."),
			ImageURL:      "https://images.unsplash.com/photo-1484704849700-f032a568e944?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.7",
			ReviewCount:   2156,
			Specifications: []string{
				"Noise Canceling: Industry-leading",
				"Battery: 30 hours playback",
				"Connectivity: Bluetooth 5.2",
				"Audio: 30mm drivers",
				"Weight: 250g",
			},
		},
		{
			Name:          "Gaming Mechanical Keyboard",
			Brand:         "Razer",
			Price:         "179.99",
			OriginalPrice: str("199.99"),
			Category:      "Electronics",
			Description:   str("High-performance mechanical gaming keyboard with RGB lighting and tactile switches for ultimate gaming experience."),
			ImageURL:      "https://images.unsplash.com/photo-1541140532154-b024d705b90a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.8",
			ReviewCount:   1647,
			Specifications: []string{
				"Switches: Mechanical tactile",
				"Lighting: RGB Chroma",
				"Layout: Full-size 104 keys",
				"Connectivity: USB-C",
				"Features: Programmable keys",
			},
		},
		{
			Name:          "Designer Leather Handbag",
			Brand:         "Michael Kors",
			Price:         "299.00",
			OriginalPrice: str("399.00"),
			Category:      "Accessories",
			Description:   str("Elegant leather handbag with gold-tone hardware and spacious interior. Perfect for both work and casual occasions."),
			ImageURL:      "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.6",
			ReviewCount:   743,
			Specifications: []string{
				"Material: Genuine leather",
				"Dimensions: 12\" W x 9\" H x 6\" D",
				"Hardware: Gold-tone",
				"Interior: Multiple compartments",
				"Strap: Adjustable shoulder strap",
			},
		},
		{
			Name:          "Luxury Watch Collection",
			Brand:         "Fossil",
			Price:         "249.99",
			OriginalPrice: str("299.99"),
			Category:      "Accessories",
			Description:   str("Premium analog watch with stainless steel case and genuine leather strap. Timeless elegance for any occasion."),
			ImageURL:      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.5",
			ReviewCount:   689,
			Specifications: []string{
				"Case: Stainless steel",
				"Strap: Genuine leather",
				"Movement: Quartz",
				"Water Resistance: 50m",
				"Warranty: 2 years",
			},
		},
		{
			Name:          "Premium Cotton T-Shirt",
			Brand:         "Uniqlo",
			Price:         "29.99",
			OriginalPrice: str("39.99"),
			Category:      "Clothing",
			Description:   str("Ultra-soft premium cotton t-shirt with perfect fit and breathable fabric. Available in multiple colors."),
			ImageURL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.5",
			ReviewCount:   1285,
			Specifications: []string{
				"Material: 100% Premium Cotton",
				"Fit: Regular fit",
				"Care: Machine washable",
				"Sizes: XS-XXL available",
				"Colors: 8 colors available",
			},
		},
		{
			Name:          "Designer Jeans",
			Brand:         "Levi's",
			Price:         "89.99",
			OriginalPrice: str("119.99"),
			Category:      "Clothing",
			Description:   str("Classic straight-fit jeans with premium denim and timeless styling. A wardrobe essential for every season."),
			ImageURL:      "https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Rating:        "4.7",
			ReviewCount:   956,
			Specifications: []string{
				"Material: 99% Cotton, 1% Elastane",
				"Fit: Straight fit",
				"Rise: Mid-rise",
				"Care: Machine washable",
				"Sizes: 28-40 available",
			},
		},
	}

	for _, p := range sampleProducts {
		if _, err := products.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedChatHistory(ctx context.Context, messages repository.ChatMessageRepository) error {
	_, err := messages.Add(ctx, domain.NewChatMessage{
		Content:   "Hi! I'm Sarah. How can I help you find the perfect product today? I can help you source products from anywhere in the world with automatic purchasing and 10% profit margin!",
		IsUser:    false,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	return err
}

func seedDropshipOrders(ctx context.Context, orders repository.DropshipOrderRepository) error {
	now := time.Now().UTC()
	sampleOrders := []domain.NewDropshipOrder{
		{
			ProductID:      "1",
			ProductName:    "Modern L-Shaped Sectional Sofa",
			CustomerEmail:  "customer@example.com",
			CustomerPrice:  "1429.89",
			SupplierPrice:  "1299.00",
			Profit:         "130.89",
			OrderStatus:    domain.OrderStatusProcessing,
			OrderDate:      now.Format(time.RFC3339Nano),
			TrackingNumber: str("TN123456789"),
			SupplierURL:    "https://supplier.example.com/sofa",
			Notes:          str("AI-sourced from global marketplace - 10% profit margin applied"),
		},
		{
			ProductID:      "2",
			ProductName:    "Premium Wireless Headphones",
			CustomerEmail:  "audiophile@example.com",
			CustomerPrice:  "362.99",
			SupplierPrice:  "329.99",
			Profit:         "32.99",
			OrderStatus:    domain.OrderStatusCompleted,
			OrderDate:      now.Add(-24 * time.Hour).Format(time.RFC3339Nano),
			TrackingNumber: str("TN987654321"),
			SupplierURL:    "https://supplier.example.com/headphones",
			Notes:          str("Fast delivery from Asia - customer very satisfied"),
		},
		{
			ProductID:      "3",
			ProductName:    "Smart Home Security Camera",
			CustomerEmail:  "security@example.com",
			CustomerPrice:  "142.99",
			SupplierPrice:  "129.99",
			Profit:         "13.00",
			OrderStatus:    domain.OrderStatusShipped,
			OrderDate:      now.Add(-48 * time.Hour).Format(time.RFC3339Nano),
			TrackingNumber: str("TN555666777"),
			SupplierURL:    "https://supplier.example.com/camera",
			Notes:          str("European supplier - excellent quality"),
		},
	}

	for _, o := range sampleOrders {
		if _, err := orders.Create(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func seedSuppliers(ctx context.Context, suppliers repository.SupplierRepository) error {
	globalSuppliers := []domain.NewSupplier{
		{
			Name:            "AliExpress Global",
			BaseURL:         "https://api.aliexpress.com",
			Country:         "China",
			ShippingCost:    "15.00",
			AvgDeliveryDays: 14,
		},
		{
			Name:            "Amazon Global",
			BaseURL:         "https://api.amazon.com",
			Country:         "USA",
			ShippingCost:    "25.00",
			AvgDeliveryDays: 7,
		},
		{
			Name:            "Walmart Global",
			BaseURL:         "https://api.walmart.com",
			Country:         "USA",
			ShippingCost:    "20.00",
			AvgDeliveryDays: 10,
		},
	}

	for _, s := range globalSuppliers {
		if _, err := suppliers.Add(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
