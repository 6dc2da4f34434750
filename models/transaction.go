package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// AdjustmentPrefix помечает описание ручной корректировки леджера.
const AdjustmentPrefix = "Корректировка: "

type Transaction struct {
	ID            int             `json:"id" db:"id"`
	UserID        int             `json:"user_id" db:"user_id"`
	CategoryID    *int            `json:"category_id,omitempty" db:"category_id"`
	Kind          string          `json:"kind" db:"kind"` // Возможные значения: "income", "expense"
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Description   string          `json:"description" db:"description"`
	OccurredAt    time.Time       `json:"occurred_at" db:"occurred_at"`
	GoalID        *int            `json:"goal_id,omitempty" db:"goal_id"`               // Привязка к цели
	InstallmentID *int            `json:"installment_id,omitempty" db:"installment_id"` // Привязка к платежу по долгу
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// Validate проверяет поля транзакции перед записью в леджер.
// Сумма всегда хранится как положительная величина, знак определяется типом.
func (t *Transaction) Validate() error {
	if t.Kind != KindIncome && t.Kind != KindExpense {
		return fmt.Errorf("недопустимый тип транзакции: %q", t.Kind)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("сумма транзакции должна быть положительной")
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("описание транзакции не может быть пустым")
	}
	return nil
}

// MarkAdjustment помечает транзакцию как ручную корректировку. Описание
// проверяется до добавления префикса: сам префикс не должен превращать
// пустое описание в допустимое.
func (t *Transaction) MarkAdjustment() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("описание корректировки не может быть пустым")
	}
	t.Description = AdjustmentPrefix + t.Description
	return nil
}
