package model

import "time"

type Order struct {
	BaseModel
	OrderDate time.Time   `gorm:"not null" json:"order_date"`
	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Items are owned by the order: created with it, removed with it.
	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"not null;index" json:"order_id"`
	ProductID uint `gorm:"not null" json:"product_id"`

	// Product reference, not a snapshot. Totals are always computed from the
	// product's current price.
	Product  Product `json:"product"`
	Quantity int     `gorm:"not null" json:"quantity" validate:"required,gt=0"`
}
