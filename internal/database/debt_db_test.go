package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func newTestDebt(t *testing.T, pool *pgxpool.Pool, userID int, status string) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		UserID:      userID,
		Name:        "Кредит на технику",
		TotalAmount: decimal.NewFromInt(900),
		Status:      status,
	}
	if err := database.CreateDebt(pool, debt); err != nil {
		t.Fatalf("ошибка создания долга: %v", err)
	}
	return debt
}

func newTestInstallment(t *testing.T, pool *pgxpool.Pool, debtID, userID int, due time.Time) *models.Installment {
	t.Helper()

	installment := &models.Installment{
		DebtID:  debtID,
		DueDate: due,
		Amount:  decimal.NewFromInt(300),
	}
	if err := database.AddInstallment(pool, installment, userID); err != nil {
		t.Fatalf("ошибка добавления платежа: %v", err)
	}
	return installment
}

func TestCreateDebtDefaultStatus(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	debt := newTestDebt(t, pool, user.ID, "")
	if debt.Status != models.DebtStatusPendente {
		t.Errorf("статус по умолчанию: получили %q, хотели PENDENTE", debt.Status)
	}
}

func TestAddInstallmentNotOwner(t *testing.T) {
	pool := testPool(t)
	owner := newTestUser(t, pool)
	stranger := newTestUser(t, pool)
	debt := newTestDebt(t, pool, owner.ID, models.DebtStatusAtiva)

	installment := &models.Installment{
		DebtID:  debt.ID,
		DueDate: time.Now().AddDate(0, 1, 0),
		Amount:  decimal.NewFromInt(100),
	}
	err := database.AddInstallment(pool, installment, stranger.ID)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("платёж к чужому долгу: получили %v, хотели ErrNotFound", err)
	}
}

func TestDeleteInstallmentNotOwner(t *testing.T) {
	pool := testPool(t)
	owner := newTestUser(t, pool)
	stranger := newTestUser(t, pool)
	debt := newTestDebt(t, pool, owner.ID, models.DebtStatusAtiva)
	installment := newTestInstallment(t, pool, debt.ID, owner.ID, time.Now().AddDate(0, 1, 0))

	err := database.DeleteInstallment(pool, installment.ID, stranger.ID)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удаление чужого платежа: получили %v, хотели ErrNotFound", err)
	}

	installments, err := database.GetInstallmentsByDebtID(pool, debt.ID, owner.ID)
	if err != nil {
		t.Fatalf("ошибка получения платежей: %v", err)
	}
	if len(installments) != 1 {
		t.Errorf("платёж владельца не должен был удалиться")
	}
}

func TestDeleteInstallment(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)
	debt := newTestDebt(t, pool, user.ID, models.DebtStatusAtiva)
	installment := newTestInstallment(t, pool, debt.ID, user.ID, time.Now().AddDate(0, 1, 0))

	if err := database.DeleteInstallment(pool, installment.ID, user.ID); err != nil {
		t.Fatalf("ошибка удаления платежа: %v", err)
	}

	installments, err := database.GetInstallmentsByDebtID(pool, debt.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения платежей: %v", err)
	}
	if len(installments) != 0 {
		t.Errorf("платёж всё ещё существует после удаления")
	}
}

func TestPayInstallmentsClosesDebt(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)
	debt := newTestDebt(t, pool, user.ID, models.DebtStatusAtiva)
	first := newTestInstallment(t, pool, debt.ID, user.ID, time.Now().AddDate(0, 1, 0))
	second := newTestInstallment(t, pool, debt.ID, user.ID, time.Now().AddDate(0, 2, 0))

	after, err := database.PayInstallment(pool, first.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка оплаты первого платежа: %v", err)
	}
	if after.Status != models.DebtStatusAtiva {
		t.Errorf("долг с неоплаченными платежами не должен закрываться, статус %q", after.Status)
	}

	after, err = database.PayInstallment(pool, second.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка оплаты второго платежа: %v", err)
	}
	// Последний платёж закрывает долг.
	if after.Status != models.DebtStatusPaga {
		t.Errorf("после оплаты всех платежей статус %q, хотели PAGA", after.Status)
	}
}

func TestPayInstallmentNotOwner(t *testing.T) {
	pool := testPool(t)
	owner := newTestUser(t, pool)
	stranger := newTestUser(t, pool)
	debt := newTestDebt(t, pool, owner.ID, models.DebtStatusAtiva)
	installment := newTestInstallment(t, pool, debt.ID, owner.ID, time.Now().AddDate(0, 1, 0))

	_, err := database.PayInstallment(pool, installment.ID, stranger.ID)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("оплата чужого платежа: получили %v, хотели ErrNotFound", err)
	}
}

func TestSettleDebt(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)
	debt := newTestDebt(t, pool, user.ID, models.DebtStatusAtiva)

	settled, err := database.SettleDebt(pool, debt.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка погашения долга: %v", err)
	}
	if settled.Status != models.DebtStatusQuitada {
		t.Errorf("статус после погашения: получили %q, хотели QUITADA", settled.Status)
	}

	// Погашенный долг — терминальное состояние.
	if _, err := database.SettleDebt(pool, debt.ID, user.ID); err == nil {
		t.Errorf("повторное погашение не должно быть разрешено")
	}
}

func TestMarkOverdueDebts(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)
	debt := newTestDebt(t, pool, user.ID, models.DebtStatusAtiva)
	newTestInstallment(t, pool, debt.ID, user.ID, time.Now().AddDate(0, 0, -5))

	if _, err := database.MarkOverdueDebts(pool); err != nil {
		t.Fatalf("ошибка пометки просроченных долгов: %v", err)
	}

	marked, err := database.GetDebtByID(pool, debt.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения долга: %v", err)
	}
	if marked.Status != models.DebtStatusVencida {
		t.Errorf("долг с просроченным платежом: статус %q, хотели VENCIDA", marked.Status)
	}
}
