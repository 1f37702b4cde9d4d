package domain

// CollectionKeys are the five top-level keys every persisted or imported
// document must carry.
var CollectionKeys = []string{"locations", "products", "deliveries", "orders", "sales"}

// Document is the root of all persisted state: five ordered collections,
// serialized as a single JSON object.
type Document struct {
	Locations  []Location `json:"locations"`
	Products   []Product  `json:"products"`
	Deliveries []Delivery `json:"deliveries"`
	Orders     []Order    `json:"orders"`
	Sales      []Sale     `json:"sales"`
}

// NewDocument returns an empty document with all collections initialized,
// so it serializes with five empty arrays rather than nulls.
func NewDocument() Document {
	return Document{
		Locations:  []Location{},
		Products:   []Product{},
		Deliveries: []Delivery{},
		Orders:     []Order{},
		Sales:      []Sale{},
	}
}

// Normalize replaces nil collections with empty ones. Imported payloads may
// carry explicit empty arrays but decoded zero values must never round-trip
// as null.
func (d *Document) Normalize() {
	if d.Locations == nil {
		d.Locations = []Location{}
	}
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Deliveries == nil {
		d.Deliveries = []Delivery{}
	}
	if d.Orders == nil {
		d.Orders = []Order{}
	}
	if d.Sales == nil {
		d.Sales = []Sale{}
	}
}

// Clone returns a deep copy of the document. Line-item slices are copied so
// callers can mutate a snapshot without aliasing stored state.
func (d Document) Clone() Document {
	out := Document{
		Locations:  append([]Location{}, d.Locations...),
		Products:   append([]Product{}, d.Products...),
		Deliveries: make([]Delivery, len(d.Deliveries)),
		Orders:     make([]Order, len(d.Orders)),
		Sales:      make([]Sale, len(d.Sales)),
	}
	for i, del := range d.Deliveries {
		del.Items = append([]DeliveryItem{}, del.Items...)
		out.Deliveries[i] = del
	}
	for i, ord := range d.Orders {
		ord.Items = append([]OrderItem{}, ord.Items...)
		out.Orders[i] = ord
	}
	for i, sale := range d.Sales {
		sale.Items = append([]SaleItem{}, sale.Items...)
		out.Sales[i] = sale
	}
	return out
}
