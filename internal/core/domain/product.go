package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is an affiliate product record. Prices and commissions are in
// Indonesian rupiah.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      int64   `json:"price"`
	Commission int64   `json:"commission"`
	Sales      int     `json:"sales"`
	Rating     float64 `json:"rating"`
	Category   string  `json:"category"`
	Image      string  `json:"image"`
	URL        string  `json:"url,omitempty"`
}

// Categories is the fixed product category filter set. "All" disables
// filtering.
var Categories = []string{"All", "Fashion", "Electronics", "Beauty", "Home Living", "Babies", "Hobbies"}

// SampleProducts returns the built-in trending product set used to seed
// the catalog and as the default studio subject.
func SampleProducts() []Product {
	return []Product{
		{ID: "1", Name: "Premium Linen Shirt", Price: 250000, Commission: 25000, Sales: 1200, Rating: 4.8, Category: "Fashion", Image: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?auto=format&fit=crop&q=80&w=400"},
		{ID: "2", Name: "Wireless Noise Cancelling Headphones", Price: 1500000, Commission: 150000, Sales: 850, Rating: 4.9, Category: "Electronics", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=400"},
		{ID: "3", Name: "Organic Glow Serum", Price: 175000, Commission: 17500, Sales: 3400, Rating: 4.7, Category: "Beauty", Image: "https://images.unsplash.com/photo-1556228578-0d85b1a4d571?auto=format&fit=crop&q=80&w=400"},
		{ID: "4", Name: "Ergonomic Office Chair", Price: 1200000, Commission: 120000, Sales: 500, Rating: 4.6, Category: "Home Living", Image: "https://images.unsplash.com/photo-1505843490701-5be5d0b19d58?auto=format&fit=crop&q=80&w=400"},
		{ID: "5", Name: "Silk Sleep Mask", Price: 85000, Commission: 8500, Sales: 2100, Rating: 4.8, Category: "Fashion", Image: "https://images.unsplash.com/photo-1583073030863-342200dc8955?auto=format&fit=crop&q=80&w=400"},
	}
}

// SocialAccount is one linked (or linkable) social platform. The set of
// platforms is fixed at startup; only the connection state and username
// change.
type SocialAccount struct {
	Platform    string `json:"platform"`
	Username    string `json:"username"`
	IsConnected bool   `json:"is_connected"`
	Followers   int    `json:"followers"`
	Color       string `json:"color"`
}

// DefaultAccounts returns the startup social account set.
func DefaultAccounts() []SocialAccount {
	return []SocialAccount{
		{Platform: "Shopee", Username: "lamare_official", IsConnected: true, Followers: 12400, Color: "bg-orange-500"},
		{Platform: "Instagram", Username: "lamare.elite", IsConnected: true, Followers: 8500, Color: "bg-pink-600"},
		{Platform: "TikTok", Username: "lamare.trends", IsConnected: false, Followers: 0, Color: "bg-black"},
		{Platform: "Facebook", Username: "", IsConnected: false, Followers: 0, Color: "bg-blue-600"},
	}
}
