package poquery

import (
	"time"

	"gorm.io/gorm"
)

// Status is the lifecycle state of a purchase order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// PurchaseOrder is the queried entity. ID is assigned once by the store,
// never reused and strictly increasing in insertion order, which is what
// makes it safe as the universal tie-break and cursor anchor.
type PurchaseOrder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ItemName     string    `gorm:"not null;index;index:idx_item_name_status,priority:1" json:"item_name"`
	OrderDate    time.Time `gorm:"type:date;not null;index;index:idx_order_date_status,priority:1" json:"order_date"`
	DeliveryDate time.Time `gorm:"type:date;not null;index" json:"delivery_date"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	UnitPrice    float64   `gorm:"not null" json:"unit_price"`
	// TotalPrice is Quantity * UnitPrice captured at creation time and
	// stored redundantly for range queries. It is never recomputed on read.
	TotalPrice float64 `gorm:"not null;index;index:idx_total_price_status,priority:1" json:"total_price"`
	Status     Status  `gorm:"not null;default:pending;index;index:idx_order_date_status,priority:2;index:idx_item_name_status,priority:2;index:idx_total_price_status,priority:2" json:"status"`

	Description     string `json:"description,omitempty"`
	Vendor          string `gorm:"index" json:"vendor,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	Category        string `gorm:"index" json:"category,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// BeforeCreate derives TotalPrice and defaults Status. Runs inside the
// store's insert path, so the stored total always reflects the quantity and
// unit price the row was created with.
func (o *PurchaseOrder) BeforeCreate(_ *gorm.DB) error {
	if o.Status == "" {
		o.Status = StatusPending
	}
	o.TotalPrice = float64(o.Quantity) * o.UnitPrice

	return nil
}
