package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentReminder struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	DueDate     time.Time       `json:"due_date" db:"due_date"`
	NotifiedAt  *time.Time      `json:"notified_at,omitempty" db:"notified_at"` // Когда письмо было отправлено
}
