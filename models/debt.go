package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Статусы долга.
const (
	DebtStatusAtiva    = "ATIVA"
	DebtStatusPendente = "PENDENTE"
	DebtStatusVencida  = "VENCIDA"
	DebtStatusPaga     = "PAGA"
	DebtStatusQuitada  = "QUITADA"
)

type Debt struct {
	ID          int             `json:"id" db:"id"`
	UserID      int             `json:"user_id" db:"user_id"`
	Name        string          `json:"name" db:"name"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type Installment struct {
	ID      int             `json:"id" db:"id"`
	DebtID  int             `json:"debt_id" db:"debt_id"`
	DueDate time.Time       `json:"due_date" db:"due_date"`
	Amount  decimal.Decimal `json:"amount" db:"amount"`
	Paid    bool            `json:"paid" db:"paid"`
}

// Допустимые переходы статуса. Переходы не запускаются по времени сами по
// себе: их выполняет вызывающая сторона (оплата, погашение, ежедневная
// проверка просрочки).
var debtTransitions = map[string][]string{
	DebtStatusPendente: {DebtStatusAtiva, DebtStatusVencida, DebtStatusPaga, DebtStatusQuitada},
	DebtStatusAtiva:    {DebtStatusVencida, DebtStatusPaga, DebtStatusQuitada},
	DebtStatusVencida:  {DebtStatusPaga, DebtStatusQuitada},
	DebtStatusPaga:     {},
	DebtStatusQuitada:  {},
}

// ValidDebtStatus проверяет, что статус входит в известный набор.
func ValidDebtStatus(status string) bool {
	_, ok := debtTransitions[status]
	return ok
}

// CanTransition сообщает, разрешён ли переход долга из одного статуса в другой.
func CanTransition(from, to string) bool {
	for _, s := range debtTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition переводит долг в новый статус или возвращает ошибку, если
// переход не разрешён.
func (d *Debt) Transition(to string) error {
	if !ValidDebtStatus(to) {
		return fmt.Errorf("неизвестный статус долга: %q", to)
	}
	if !CanTransition(d.Status, to) {
		return fmt.Errorf("переход долга из статуса %q в %q не разрешён", d.Status, to)
	}
	d.Status = to
	return nil
}
