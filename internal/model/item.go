package model

import "time"

// Item represents a clothing listing offered for swapping, renting or
// point redemption.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Size        string    `json:"size"`
	Type        string    `json:"type"`
	Brand       string    `json:"brand,omitempty"`
	Condition   string    `json:"condition"`
	RentPrice   float64   `json:"rent_price,omitempty"`
	Points      int       `json:"points,omitempty"`
	MinRating   float64   `json:"min_rating"`
	IsWashed    bool      `json:"is_washed"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	UserID      string    `json:"user_id"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Listing types.
const (
	ItemTypeSwap   = "swap"
	ItemTypeRent   = "rent"
	ItemTypeRedeem = "redeem"
)

// Moderation statuses. Only approved items are visible to search,
// similarity, suggestion and trending results.
const (
	ItemStatusPending  = "pending"
	ItemStatusApproved = "approved"
	ItemStatusRejected = "rejected"
	ItemStatusFlagged  = "flagged"
)

// Categories returns the fixed set of listing categories.
func Categories() []string {
	return []string{"Tops", "Bottoms", "Dresses", "Jackets", "Shoes", "Accessories", "Sets"}
}

// Sizes returns the fixed set of listing sizes.
func Sizes() []string {
	return []string{"XS", "S", "M", "L", "XL", "XXL", "Free Size"}
}

// Conditions returns the fixed set of listing conditions.
func Conditions() []string {
	return []string{"Excellent", "Good", "Fair", "Needs TLC"}
}

// ValidItemType reports whether t is a known listing type.
func ValidItemType(t string) bool {
	return t == ItemTypeSwap || t == ItemTypeRent || t == ItemTypeRedeem
}

// ValidItemStatus reports whether s is a known moderation status.
func ValidItemStatus(s string) bool {
	switch s {
	case ItemStatusPending, ItemStatusApproved, ItemStatusRejected, ItemStatusFlagged:
		return true
	}
	return false
}

// ItemPatch carries a partial item update. Nil fields are left untouched.
type ItemPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Size        *string   `json:"size,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	Condition   *string   `json:"condition,omitempty"`
	RentPrice   *float64  `json:"rent_price,omitempty"`
	Points      *int      `json:"points,omitempty"`
	MinRating   *float64  `json:"min_rating,omitempty"`
	IsWashed    *bool     `json:"is_washed,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Location    *string   `json:"location,omitempty"`
}

// Apply copies the set fields of the patch onto the item.
func (p ItemPatch) Apply(item *Item) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Size != nil {
		item.Size = *p.Size
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Brand != nil {
		item.Brand = *p.Brand
	}
	if p.Condition != nil {
		item.Condition = *p.Condition
	}
	if p.RentPrice != nil {
		item.RentPrice = *p.RentPrice
	}
	if p.Points != nil {
		item.Points = *p.Points
	}
	if p.MinRating != nil {
		item.MinRating = *p.MinRating
	}
	if p.IsWashed != nil {
		item.IsWashed = *p.IsWashed
	}
	if p.Tags != nil {
		item.Tags = *p.Tags
	}
	if p.Images != nil {
		item.Images = *p.Images
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
}
