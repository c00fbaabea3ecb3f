package catalog

// SeedProducts returns the fixed storefront menu. IDs are assigned here
// and stay stable for the process lifetime.
func SeedProducts() []Product {
	sizes := []string{"Small", "Medium", "Large"}

	return []Product{
		{
			ID:          1,
			Name:        "Espresso Supreme",
			Description: "Experience the pinnacle of coffee craftsmanship with our signature blend. Rich, bold, and perfectly balanced with notes of dark chocolate and caramel.",
			Price:       "5.49",
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&w=800&h=600",
			Category:    "Espresso",
			Rating:      "4.9",
			ReviewCount: 230,
			Sizes:       sizes,
			IsPopular:   true,
		},
		{
			ID:          2,
			Name:        "Golden Latte",
			Description: "Smooth espresso combined with steamed milk and a touch of golden turmeric. A luxurious twist on the classic latte.",
			Price:       "6.99",
			Image:       "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?auto=format&fit=crop&w=800&h=600",
			Category:    "Latte",
			Rating:      "4.7",
			ReviewCount: 185,
			Sizes:       sizes,
			IsPopular:   true,
		},
		{
			ID:          3,
			Name:        "Velvet Cappuccino",
			Description: "Perfect balance of espresso, steamed milk, and velvety microfoam. Crafted with precision for the ultimate coffee experience.",
			Price:       "5.99",
			Image:       "https://images.unsplash.com/photo-1572442388796-11668a67e53d?auto=format&fit=crop&w=800&h=600",
			Category:    "Cappuccino",
			Rating:      "4.8",
			ReviewCount: 156,
			Sizes:       sizes,
			IsPopular:   true,
		},
		{
			ID:          4,
			Name:        "Midnight Americano",
			Description: "Bold and robust coffee for those who appreciate the pure essence of premium coffee beans. Dark, rich, and invigorating.",
			Price:       "4.99",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=800&h=600",
			Category:    "Americano",
			Rating:      "4.5",
			ReviewCount: 98,
			Sizes:       sizes,
			IsPopular:   true,
		},
		{
			ID:          5,
			Name:        "Chocolate Mocha",
			Description: "Rich espresso blended with premium chocolate and steamed milk. Topped with whipped cream for the ultimate indulgence.",
			Price:       "7.49",
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?auto=format&fit=crop&w=800&h=600",
			Category:    "Mocha",
			Rating:      "4.6",
			ReviewCount: 142,
			Sizes:       sizes,
			IsPopular:   false,
		},
		{
			ID:          6,
			Name:        "Vanilla Macchiato",
			Description: "Espresso marked with steamed milk and vanilla syrup. A sweet and smooth coffee experience with aromatic vanilla notes.",
			Price:       "6.49",
			Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=800&h=600",
			Category:    "Macchiato",
			Rating:      "4.4",
			ReviewCount: 76,
			Sizes:       sizes,
			IsPopular:   false,
		},
	}
}
