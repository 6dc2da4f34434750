package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Goal struct {
	ID           int             `json:"id" db:"id"`
	UserID       int             `json:"user_id" db:"user_id"`
	Name         string          `json:"name" db:"name"`
	TargetAmount decimal.Decimal `json:"target_amount" db:"target_amount"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// GoalProgress — производное представление прогресса цели: взносы из
// леджера (последние сверху) и их сумма. Пересчитывается при каждом
// запросе, кешированного итога в базе нет.
type GoalProgress struct {
	Contributions []Transaction   `json:"contributions"`
	Total         decimal.Decimal `json:"total"`
}

// ContributionsTotal суммирует величины взносов.
func ContributionsTotal(contributions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range contributions {
		total = total.Add(tx.Amount)
	}
	return total
}
