// File: azulpool/models/quote.go
package models

import "time"

// ServiceCategory determines the base pricing tier of a quote.
type ServiceCategory string

const (
	CategoryRegular   ServiceCategory = "regular"
	CategoryEquipment ServiceCategory = "equipment"
	CategoryFilter    ServiceCategory = "filter"
	CategoryGreen     ServiceCategory = "green"
	CategoryOther     ServiceCategory = "other"
)

// ServiceCategories lists every valid category.
var ServiceCategories = []ServiceCategory{
	CategoryRegular,
	CategoryEquipment,
	CategoryFilter,
	CategoryGreen,
	CategoryOther,
}

// IsValid reports whether the category is one of the known tiers.
func (c ServiceCategory) IsValid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IsOneTime reports whether the category bills as a single job rather than
// ongoing weekly service.
func (c ServiceCategory) IsOneTime() bool {
	return c == CategoryGreen || c == CategoryEquipment
}

// PoolSize is the coarse size bucket of the customer's pool.
type PoolSize string

const (
	SizeSmall  PoolSize = "small"
	SizeMedium PoolSize = "medium"
	SizeLarge  PoolSize = "large"
)

// PoolType is the coarse construction bucket of the customer's pool.
type PoolType string

const (
	TypePoolOnly PoolType = "pool-only"
	TypePoolSpa  PoolType = "pool-spa"
	TypeHotTub   PoolType = "hot-tub"
	TypeOther    PoolType = "other"
)

// SpecialFlags are the per-pool conditions that carry an additive fee.
type SpecialFlags struct {
	SaltwaterPool   bool   `json:"saltwaterPool"`
	TreesOverPool   bool   `json:"treesOverPool"`
	AboveGroundPool bool   `json:"aboveGroundPool"`
	OtherNote       string `json:"otherNote,omitempty"`
}

// QuoteRequest is the pricing-relevant slice of a quote, accumulated by the
// wizard and fed to the pricing engine.
type QuoteRequest struct {
	ServiceCategory     ServiceCategory `json:"serviceCategory,omitempty"`
	PoolSize            PoolSize        `json:"poolSize,omitempty"`
	PoolType            PoolType        `json:"poolType,omitempty"`
	SpecialFlags        SpecialFlags    `json:"specialFlags"`
	EquipmentSelections []string        `json:"equipmentSelections,omitempty"`
}

// QuoteStatus tracks a quote through the admin lifecycle.
type QuoteStatus string

const (
	StatusPending  QuoteStatus = "pending"
	StatusUpdated  QuoteStatus = "updated"
	StatusAccepted QuoteStatus = "accepted"
)

// CommercialContact holds the contact block submitted on the commercial path.
type CommercialContact struct {
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// QuoteRecord is the persisted form of a submitted quote.
type QuoteRecord struct {
	Address   string `json:"address,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`

	Segment string `json:"segment,omitempty"` // "residential" or "commercial"

	QuoteRequest

	ServiceCategoryOther string             `json:"serviceCategoryOther,omitempty"`
	PoolTypeOther        string             `json:"poolTypeOther,omitempty"`
	EquipmentOther       string             `json:"equipmentOther,omitempty"`
	Commercial           *CommercialContact `json:"commercial,omitempty"`

	// Calculated pricing details, attached server-side at submission time and
	// freely overwritten by admins afterwards.
	Pricing *QuotePricing `json:"pricing,omitempty"`

	Status     QuoteStatus `json:"status,omitempty"`
	CreatedAt  *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time  `json:"updatedAt,omitempty"`
	AcceptedAt *time.Time  `json:"acceptedAt,omitempty"`
}

// CustomerEmail returns the best contact address on the record, preferring the
// residential email over the commercial contact block.
func (q *QuoteRecord) CustomerEmail() string {
	if q.Email != "" {
		return q.Email
	}
	if q.Commercial != nil {
		return q.Commercial.Email
	}
	return ""
}
