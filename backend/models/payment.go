package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
)

// Payment is the durable ledger row for a manual bank transfer. Rows
// are never deleted; status only moves pending -> verified.
type Payment struct {
	gorm.Model
	PaymentID       string  `gorm:"unique;not null"`
	UserID          uint    `gorm:"not null;index"`
	Amount          float64 `gorm:"not null"`
	Method          string
	Status          string `gorm:"default:pending"`
	TransactionCode string
	VerifiedAt      *time.Time
}

// PendingPayment is the transient copy mirrored into the TTL cache at
// creation time and consulted during verification.
type PendingPayment struct {
	UserID    uint      `json:"userId"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentInfo is the bank-transfer instruction block returned from
// payment creation.
type PaymentInfo struct {
	Bank          string  `json:"bank"`
	AccountNumber string  `json:"accountNumber"`
	AccountName   string  `json:"accountName"`
	Amount        float64 `json:"amount"`
	Content       string  `json:"content"`
}
