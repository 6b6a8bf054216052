package dto

type ProductResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Price        int64          `json:"price"`
	PriceText    string         `json:"priceText"`
	Stock        int            `json:"stock"`
	Sku          string         `json:"sku"`
	MinimumOrder int            `json:"minimumOrder"`
	Weight       int            `json:"weight"`
	Length       float64        `json:"length"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	URL          string         `json:"url"`
	URL2         string         `json:"url2,omitempty"`
	Store        *StoreResponse `json:"store,omitempty"`
}

type ProductSearchResponse struct {
	Products []ProductResponse `json:"products"`
	// Suggestions diisi saat pencarian tidak persis, diurutkan dari yang paling mirip.
	Suggestions []string `json:"suggestions,omitempty"`
}
