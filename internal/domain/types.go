package domain

// Order status values.
const (
	OrderPending   = "pending"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the three order states.
func ValidOrderStatus(s string) bool {
	return s == OrderPending || s == OrderDelivered || s == OrderCancelled
}

// Location represents a point-of-sale outlet that receives deliveries and
// is billed for sales and orders.
type Location struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	Notes        string `json:"notes,omitempty"`
}

// Product is a catalog item with three price tiers.
type Product struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Category             string  `json:"category"`
	CostPrice            float64 `json:"costPrice"`
	WholesalePrice       float64 `json:"wholesalePrice"`
	SuggestedRetailPrice float64 `json:"suggestedRetailPrice"`
	Description          string  `json:"description,omitempty"`
	ImageURL             string  `json:"imageUrl,omitempty"`
}

// DeliveryItem is one line of a delivery: quantity at an agreed unit price.
type DeliveryItem struct {
	ProductID    string  `json:"productId"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

// Delivery is stock sent to a location, with a paid/unpaid flag.
type Delivery struct {
	ID         string         `json:"id"`
	LocationID string         `json:"locationId"`
	Date       string         `json:"date"`
	Items      []DeliveryItem `json:"items"`
	Notes      string         `json:"notes,omitempty"`
	IsPaid     bool           `json:"isPaid"`
}

// OrderItem is one requested product quantity. No price is captured at
// order time.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is a pending/delivered/cancelled request for product quantities at
// a location.
type Order struct {
	ID         string      `json:"id"`
	LocationID string      `json:"locationId"`
	Date       string      `json:"date"`
	Items      []OrderItem `json:"items"`
	Status     string      `json:"status"`
	Notes      string      `json:"notes,omitempty"`
}

// SaleItem is one line of a completed sale with the realized unit price.
type SaleItem struct {
	ProductID    string  `json:"productId"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
}

// Sale is a completed transaction at a location.
type Sale struct {
	ID         string     `json:"id"`
	LocationID string     `json:"locationId"`
	Date       string     `json:"date"`
	Items      []SaleItem `json:"items"`
	Notes      string     `json:"notes,omitempty"`
}

// Total returns the revenue of the delivery (quantity times unit price,
// summed over all lines).
func (d Delivery) Total() float64 {
	var total float64
	for _, it := range d.Items {
		total += float64(it.Quantity) * it.PricePerUnit
	}
	return total
}

// Total returns the revenue of the sale.
func (s Sale) Total() float64 {
	var total float64
	for _, it := range s.Items {
		total += float64(it.Quantity) * it.PricePerUnit
	}
	return total
}
