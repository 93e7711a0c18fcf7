package domain

import "time"

type UserType string

const (
	UserTypeSeller   UserType = "Seller"
	UserTypeCustomer UserType = "Customer"
)

// RoleAdmin is the only role value; everyone else has an empty role.
const RoleAdmin = "admin"

type User struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	Role      string    `gorm:"index" json:"role"`
	UserType  UserType  `gorm:"index" json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
func (u *User) IsSeller() bool { return u.UserType == UserTypeSeller }

// Shoe is a catalog listing. Price is in major currency units; charges are
// computed in minor units (see MinorUnits).
type Shoe struct {
	ID          string    `gorm:"primaryKey;size:24" json:"id"`
	SellerID    string    `gorm:"index;size:24" json:"seller_id"`
	SellerEmail string    `gorm:"index" json:"seller_email"`
	Name        string    `json:"name"`
	Category    string    `gorm:"index" json:"category"`
	Price       int64     `json:"price"`
	Condition   string    `json:"condition"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Advertisement marks a listing as promoted. The unique index keeps it to
// one advert per shoe.
type Advertisement struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	ShoeID    string    `gorm:"uniqueIndex;size:24" json:"shoe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Booking links a buyer to a shoe with a price snapshot taken at booking
// time, so later listing edits don't move the agreed price.
type Booking struct {
	ID              string    `gorm:"primaryKey;size:24" json:"id"`
	ShoeID          string    `gorm:"index;size:24" json:"shoe_id"`
	BuyerEmail      string    `gorm:"index" json:"buyer_email"`
	Price           int64     `json:"price"`
	MeetingLocation string    `json:"meeting_location"`
	Phone           string    `json:"phone"`
	CreatedAt       time.Time `json:"created_at"`
}

// Payment is the append-only record of a completed charge. The unique shoe
// index is the settlement guard: a shoe settles at most once.
type Payment struct {
	ID         string    `gorm:"primaryKey;size:24" json:"id"`
	ShoeID     string    `gorm:"uniqueIndex;size:24" json:"shoe_id"`
	BuyerEmail string    `gorm:"index" json:"buyer_email"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	ChargeID   string    `json:"charge_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// MinorUnits converts a listed price to the smallest currency denomination
// the payment processor charges in.
func MinorUnits(price int64) int64 { return price * 100 }
