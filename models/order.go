package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of a marketplace order
type OrderStatus string

const (
	StatusPendingReview    OrderStatus = "pending_review"
	StatusWaitingForChef   OrderStatus = "waiting_for_chef"
	StatusPreparing        OrderStatus = "preparing"
	StatusReadyForDelivery OrderStatus = "ready_for_delivery"
	StatusOutForDelivery   OrderStatus = "out_for_delivery"
	StatusDelivered        OrderStatus = "delivered"
	StatusRejected         OrderStatus = "rejected"
	StatusNotDelivered     OrderStatus = "not_delivered"
)

// NotDeliveredResponsibility records who was at fault for a failed delivery
type NotDeliveredResponsibility string

const (
	ResponsibilityCustomerUnavailable NotDeliveredResponsibility = "customer_unavailable"
	ResponsibilityCustomerRefused     NotDeliveredResponsibility = "customer_refused"
	ResponsibilityAddressIssue        NotDeliveredResponsibility = "address_issue"
	ResponsibilityExternalIssue       NotDeliveredResponsibility = "external_issue"
	ResponsibilityOther               NotDeliveredResponsibility = "other"
)

type Order struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	CustomerID      string      `json:"customer_id" gorm:"not null;index"`
	Customer        User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CustomerName    string      `json:"customer_name"` // snapshot at order time
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address" gorm:"not null"`
	DishID          string      `json:"dish_id" gorm:"not null"`
	Dish            Dish        `json:"dish,omitempty" gorm:"foreignKey:DishID"`
	ChefID          string      `json:"chef_id" gorm:"not null;index"`
	Chef            User        `json:"chef,omitempty" gorm:"foreignKey:ChefID"`
	Quantity        int         `json:"quantity" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'pending_review'"`

	// DailyDishOrderNumber is the order's position among today's orders for the dish
	DailyDishOrderNumber int `json:"daily_dish_order_number,omitempty"`

	Rating *int   `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`

	Subtotal          float64 `json:"subtotal"`
	DeliveryFee       float64 `json:"delivery_fee"`
	Discount          float64 `json:"discount"`
	Total             float64 `json:"total"`
	AppliedCouponCode string  `json:"applied_coupon_code,omitempty"`
	CustomerNotes     string  `json:"customer_notes,omitempty"`

	NotDeliveredReason         string                     `json:"not_delivered_reason,omitempty"`
	NotDeliveredResponsibility NotDeliveredResponsibility `json:"not_delivered_responsibility,omitempty"`
	NotDeliveredAt             *time.Time                 `json:"not_delivered_at,omitempty"`

	DeliveryPersonID   *string `json:"delivery_person_id,omitempty"`
	DeliveryPerson     *User   `json:"delivery_person,omitempty" gorm:"foreignKey:DeliveryPersonID"`
	DeliveryPersonName string  `json:"delivery_person_name,omitempty"`

	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderStatusHistory tracks every status change for the audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    string      `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  string      `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
