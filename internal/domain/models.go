package domain

import (
	"fmt"
	"math"
)

const (
	defaultWeightGrams = 340
	defaultOrderStatus = "pending"
)

// CoffeeProduct is a bag of coffee listed in the catalog.
type CoffeeProduct struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Origin      *string  `json:"origin"`
	Process     *string  `json:"process"`     // washed, natural, honey...
	RoastLevel  *string  `json:"roast_level"` // light, medium, dark
	Price       float64  `json:"price" validate:"gte=0"`
	InStock     bool     `json:"in_stock"`
	Image       *string  `json:"image" validate:"omitempty,http_url"`
	Categories  []string `json:"categories"`
	WeightGrams *int     `json:"weight_grams"`
}

// NewCoffeeProduct builds a product from an untyped mapping, applying defaults.
func NewCoffeeProduct(m map[string]any) (CoffeeProduct, error) {
	f := newFields(m, "")
	p := CoffeeProduct{
		Title:       f.requiredString("title"),
		Description: f.optionalString("description"),
		Origin:      f.optionalString("origin"),
		Process:     f.optionalString("process"),
		RoastLevel:  f.optionalString("roast_level"),
		Price:       f.requiredFloat("price"),
		InStock:     f.boolOr("in_stock", true),
		Image:       f.optionalString("image"),
		Categories:  f.strings("categories"),
		WeightGrams: f.optionalInt("weight_grams", defaultWeightGrams),
	}
	f.check(p)
	if err := f.err("coffee product"); err != nil {
		return CoffeeProduct{}, err
	}
	return p, nil
}

// ToMap is the inverse of NewCoffeeProduct; absent optionals become nil.
func (p CoffeeProduct) ToMap() map[string]any {
	return map[string]any{
		"title":        p.Title,
		"description":  optString(p.Description),
		"origin":       optString(p.Origin),
		"process":      optString(p.Process),
		"roast_level":  optString(p.RoastLevel),
		"price":        p.Price,
		"in_stock":     p.InStock,
		"image":        optString(p.Image),
		"categories":   append([]string{}, p.Categories...),
		"weight_grams": optInt(p.WeightGrams),
	}
}

// Article is an editorial piece looked up by slug.
type Article struct {
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Excerpt  *string `json:"excerpt"`
	Content  string  `json:"content"`
	Image    *string `json:"image" validate:"omitempty,http_url"`
	Category *string `json:"category"`
}

// NewArticle builds an article from an untyped mapping. Title, slug and content
// are required.
func NewArticle(m map[string]any) (Article, error) {
	f := newFields(m, "")
	a := Article{
		Title:    f.requiredString("title"),
		Slug:     f.requiredString("slug"),
		Excerpt:  f.optionalString("excerpt"),
		Content:  f.requiredString("content"),
		Image:    f.optionalString("image"),
		Category: f.optionalString("category"),
	}
	f.check(a)
	if err := f.err("article"); err != nil {
		return Article{}, err
	}
	return a, nil
}

// ToMap is the inverse of NewArticle.
func (a Article) ToMap() map[string]any {
	return map[string]any{
		"title":    a.Title,
		"slug":     a.Slug,
		"excerpt":  optString(a.Excerpt),
		"content":  a.Content,
		"image":    optString(a.Image),
		"category": optString(a.Category),
	}
}

// OrderItem is a snapshot of a product line at order time. ProductID is not
// checked against the catalog.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// readOrderItem reads one line; all four fields are required.
func readOrderItem(f *fields) OrderItem {
	return OrderItem{
		ProductID: f.requiredString("product_id"),
		Title:     f.requiredString("title"),
		Quantity:  f.requiredInt("quantity"),
		Price:     f.requiredFloat("price"),
	}
}

// ToMap is the inverse of readOrderItem.
func (it OrderItem) ToMap() map[string]any {
	return map[string]any{
		"product_id": it.ProductID,
		"title":      it.Title,
		"quantity":   it.Quantity,
		"price":      it.Price,
	}
}

// Order is a submitted checkout. Items are copied by value and Subtotal is kept
// exactly as the client sent it.
type Order struct {
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal" validate:"gte=0"`
	Email           string      `json:"email"`
	ShippingName    string      `json:"shipping_name"`
	ShippingAddress string      `json:"shipping_address"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	PostalCode      string      `json:"postal_code"`
	Country         string      `json:"country"`
	Status          string      `json:"status"`
}

// NewOrder builds an order from an untyped mapping. Errors inside items are
// reported under items[i]; status defaults to "pending".
func NewOrder(m map[string]any) (Order, error) {
	f := newFields(m, "")
	o := Order{Items: []OrderItem{}}
	for i, im := range f.objects("items") {
		if im == nil {
			continue
		}
		sub := newFields(im, fmt.Sprintf("items[%d]", i))
		it := readOrderItem(sub)
		sub.check(it)
		o.Items = append(o.Items, it)
		f.absorb(sub)
	}
	o.Subtotal = f.requiredFloat("subtotal")
	o.Email = f.requiredString("email")
	o.ShippingName = f.requiredString("shipping_name")
	o.ShippingAddress = f.requiredString("shipping_address")
	o.City = f.requiredString("city")
	o.State = f.requiredString("state")
	o.PostalCode = f.requiredString("postal_code")
	o.Country = f.requiredString("country")
	o.Status = f.stringOr("status", defaultOrderStatus)
	f.check(o)
	if err := f.err("order"); err != nil {
		return Order{}, err
	}
	return o, nil
}

// ToMap is the inverse of NewOrder; items become a list of mappings.
func (o Order) ToMap() map[string]any {
	items := make([]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, it.ToMap())
	}
	return map[string]any{
		"items":            items,
		"subtotal":         o.Subtotal,
		"email":            o.Email,
		"shipping_name":    o.ShippingName,
		"shipping_address": o.ShippingAddress,
		"city":             o.City,
		"state":            o.State,
		"postal_code":      o.PostalCode,
		"country":          o.Country,
		"status":           o.Status,
	}
}

// LineTotal sums quantity*price over the items, rounded to cents.
func (o Order) LineTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return math.Round(total*100) / 100
}
