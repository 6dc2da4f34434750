package models

import "time"

type Category struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Type      string    `json:"type" db:"type"` // Возможные значения: "income", "expense"
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
