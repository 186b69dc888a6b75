package model

import "time"

type PurchaseType string

const (
	PurchaseTypeProduct    PurchaseType = "product"
	PurchaseTypeMysteryBox PurchaseType = "mysterybox"
)

type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusSuccess  PurchaseStatus = "success"
	PurchaseStatusRejected PurchaseStatus = "rejected"
)

type Product struct {
	ID          string `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"`
	Stock       int    `gorm:"not null" json:"stock"`
	MaxStock    int    `gorm:"not null" json:"maxStock"` // stock at creation, for the sold-percentage bar
	IsActive    bool   `gorm:"not null" json:"isActive"`
	Category    string `gorm:"size:64;index" json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	BuyLink     string `json:"buyLink"`
}

type User struct {
	UID                string    `gorm:"primaryKey;size:64;not null" json:"uid"` // external identity-provider subject
	Nickname           string    `gorm:"size:64;not null" json:"nickname"`
	Email              string    `gorm:"size:128;index;not null" json:"email"`
	LastLogin          time.Time `json:"lastLogin"`
	IsActive           bool      `gorm:"not null" json:"isActive"`
	MysteryBoxAttempts int       `gorm:"not null" json:"mysteryBoxAttempts"`
	Role               string    `gorm:"size:16;not null" json:"role"` // always "user"; admin is a session credential, not a stored role
}

type PurchaseHistoryItem struct {
	ID          string         `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID      string         `gorm:"size:64;index;not null" json:"userId"`
	Type        PurchaseType   `gorm:"size:16;not null" json:"type"`
	ProductName string         `gorm:"size:128;not null" json:"productName"` // name snapshot at purchase time
	Timestamp   time.Time      `gorm:"index" json:"timestamp"`
	Status      PurchaseStatus `gorm:"size:16;index;not null" json:"status"`
	ProductID   string         `gorm:"size:64" json:"productId,omitempty"` // product purchases only, drives the stock decrement
	IsOpened    bool           `json:"isOpened"`                           // mystery boxes only
	Prize       string         `gorm:"size:128" json:"prize,omitempty"`    // mystery boxes only, assigned on approval
}

type Review struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Author    string    `gorm:"size:64;not null" json:"author"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

type PrivateMessage struct {
	ID        string    `gorm:"primaryKey;size:64;not null" json:"id"`
	UserID    string    `gorm:"size:64;index;not null" json:"userId"` // recipient
	Text      string    `gorm:"not null" json:"text"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	IsRead    bool      `gorm:"not null" json:"isRead"`
}

type CustomButton struct {
	ID       string `gorm:"primaryKey;size:64;not null" json:"id"`
	Name     string `gorm:"size:64;not null" json:"name"`
	URL      string `gorm:"not null" json:"url"`
	Icon     string `gorm:"size:64" json:"icon"`
	IsActive bool   `gorm:"not null" json:"isActive"`
}
