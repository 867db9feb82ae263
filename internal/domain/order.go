package domain

import "time"

// ShopOrder is a generic shop checkout record. It is a peer consumer of the
// payment reconciliation mechanism; inventory and checkout flow live outside
// this service.
type ShopOrder struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	CustomerName  string `json:"customer_name" gorm:"type:varchar(128)"`
	CustomerEmail string `json:"customer_email" gorm:"type:varchar(128);not null"`
	CustomerPhone string `json:"customer_phone" gorm:"type:varchar(32)"`

	Total float64 `json:"total"`
	Paid  bool    `json:"paid"`

	CheckoutRequestID string `json:"-" gorm:"type:varchar(64);index"`

	Items    []ShopOrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Payments []Payment       `json:"payments" gorm:"polymorphic:Target"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShopOrder) TableName() string { return "shop_orders" }

type ShopOrderItem struct {
	ID       int64   `json:"id" gorm:"primaryKey"`
	OrderID  int64   `json:"order_id" gorm:"index;not null"`
	Name     string  `json:"name" gorm:"type:varchar(128)"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (ShopOrderItem) TableName() string { return "shop_order_items" }

// CourseOrder is a course enrollment purchase. The first applied payment
// provisions the student account (welcome side effect), exactly once.
type CourseOrder struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	StudentName  string `json:"student_name" gorm:"type:varchar(128)"`
	StudentEmail string `json:"student_email" gorm:"type:varchar(128);not null"`
	CourseID     int64  `json:"course_id" gorm:"index;not null"`
	CourseName   string `json:"course_name" gorm:"type:varchar(128)"`

	Price float64 `json:"price"`
	Paid  bool    `json:"paid"`

	AccountProvisioned bool `json:"account_provisioned"`

	CheckoutRequestID string `json:"-" gorm:"type:varchar(64);index"`

	Payments []Payment `json:"payments" gorm:"polymorphic:Target"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CourseOrder) TableName() string { return "course_orders" }
