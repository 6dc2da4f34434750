package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func CreateDebt(pool *pgxpool.Pool, debt *models.Debt) error {
	if debt.Status == "" {
		debt.Status = models.DebtStatusPendente
	}
	if !models.ValidDebtStatus(debt.Status) {
		return fmt.Errorf("неизвестный статус долга: %q", debt.Status)
	}

	query := `
		INSERT INTO debts (user_id, name, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		debt.UserID,
		debt.Name,
		debt.TotalAmount,
		debt.Status).Scan(&debt.ID, &debt.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении долга: %v", err)
	}
	return nil
}

func GetDebtByID(pool *pgxpool.Pool, debtID, userID int) (*models.Debt, error) {
	query := `
		SELECT id, user_id, name, total_amount, status, created_at
		FROM debts
		WHERE id = $1 AND user_id = $2`

	debt := &models.Debt{}
	err := pool.QueryRow(context.Background(), query, debtID, userID).Scan(
		&debt.ID,
		&debt.UserID,
		&debt.Name,
		&debt.TotalAmount,
		&debt.Status,
		&debt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении долга: %v", err)
	}
	return debt, nil
}

func GetDebtsByUserID(pool *pgxpool.Pool, userID int) ([]models.Debt, error) {
	query := `SELECT id, user_id, name, total_amount, status, created_at FROM debts WHERE user_id = $1`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении долгов: %v", err)
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var debt models.Debt
		if err := rows.Scan(&debt.ID, &debt.UserID, &debt.Name, &debt.TotalAmount, &debt.Status, &debt.CreatedAt); err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

func DeleteDebt(pool *pgxpool.Pool, debtID, userID int) error {
	query := `DELETE FROM debts WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, debtID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления долга: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddInstallment добавляет платёж к долгу владельца.
func AddInstallment(pool *pgxpool.Pool, installment *models.Installment, userID int) error {
	if _, err := GetDebtByID(pool, installment.DebtID, userID); err != nil {
		return err
	}

	query := `
		INSERT INTO installments (debt_id, due_date, amount)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := pool.QueryRow(context.Background(), query,
		installment.DebtID,
		installment.DueDate,
		installment.Amount).Scan(&installment.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении платежа: %v", err)
	}
	return nil
}

func GetInstallmentsByDebtID(pool *pgxpool.Pool, debtID, userID int) ([]models.Installment, error) {
	if _, err := GetDebtByID(pool, debtID, userID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, debt_id, due_date, amount, paid
		FROM installments
		WHERE debt_id = $1
		ORDER BY due_date`
	rows, err := pool.Query(context.Background(), query, debtID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении платежей: %v", err)
	}
	defer rows.Close()

	var installments []models.Installment
	for rows.Next() {
		var inst models.Installment
		if err := rows.Scan(&inst.ID, &inst.DebtID, &inst.DueDate, &inst.Amount, &inst.Paid); err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	return installments, nil
}

// DeleteInstallment удаляет платёж. Владелец определяется через
// родительский долг, поэтому проверка и удаление выполняются в одной
// транзакции: между чтением и удалением владелец смениться не может.
func DeleteInstallment(pool *pgxpool.Pool, installmentID, userID int) error {
	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback(ctx)

	var ownerID int
	query := `
		SELECT d.user_id
		FROM installments i
		JOIN debts d ON d.id = i.debt_id
		WHERE i.id = $1
		FOR UPDATE`
	err = tx.QueryRow(ctx, query, installmentID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("ошибка при поиске платежа: %v", err)
	}
	if ownerID != userID {
		// Чужой платёж выглядит как отсутствующий.
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM installments WHERE id = $1`, installmentID); err != nil {
		return fmt.Errorf("ошибка удаления платежа: %v", err)
	}

	return tx.Commit(ctx)
}

// PayInstallment отмечает платёж оплаченным. Когда оплачены все платежи
// долга, долг переводится в статус PAGA — переход выполняется здесь же,
// в той же транзакции.
func PayInstallment(pool *pgxpool.Pool, installmentID, userID int) (*models.Debt, error) {
	ctx := context.Background()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback(ctx)

	debt := &models.Debt{}
	query := `
		SELECT d.id, d.user_id, d.name, d.total_amount, d.status, d.created_at
		FROM installments i
		JOIN debts d ON d.id = i.debt_id
		WHERE i.id = $1
		FOR UPDATE`
	err = tx.QueryRow(ctx, query, installmentID).Scan(
		&debt.ID, &debt.UserID, &debt.Name, &debt.TotalAmount, &debt.Status, &debt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске платежа: %v", err)
	}
	if debt.UserID != userID {
		return nil, ErrNotFound
	}

	if _, err := tx.Exec(ctx, `UPDATE installments SET paid = TRUE WHERE id = $1`, installmentID); err != nil {
		return nil, fmt.Errorf("ошибка при отметке платежа: %v", err)
	}

	var unpaid int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM installments WHERE debt_id = $1 AND paid = FALSE`, debt.ID).Scan(&unpaid)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте неоплаченных платежей: %v", err)
	}

	if unpaid == 0 && models.CanTransition(debt.Status, models.DebtStatusPaga) {
		if err := debt.Transition(models.DebtStatusPaga); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, `UPDATE debts SET status = $1 WHERE id = $2`, debt.Status, debt.ID); err != nil {
			return nil, fmt.Errorf("ошибка обновления статуса долга: %v", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return debt, nil
}

// SettleDebt переводит долг владельца в статус QUITADA.
func SettleDebt(pool *pgxpool.Pool, debtID, userID int) (*models.Debt, error) {
	debt, err := GetDebtByID(pool, debtID, userID)
	if err != nil {
		return nil, err
	}

	if err := debt.Transition(models.DebtStatusQuitada); err != nil {
		return nil, err
	}

	result, err := pool.Exec(context.Background(),
		`UPDATE debts SET status = $1 WHERE id = $2 AND user_id = $3`,
		debt.Status, debt.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления статуса долга: %v", err)
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return debt, nil
}

// MarkOverdueDebts переводит в VENCIDA долги с неоплаченными платежами,
// срок которых прошёл. Вызывается ежедневной CRON-задачей.
func MarkOverdueDebts(pool *pgxpool.Pool) (int, error) {
	query := `
		UPDATE debts d
		SET status = $1
		WHERE d.status IN ($2, $3)
		AND EXISTS (
			SELECT 1 FROM installments i
			WHERE i.debt_id = d.id AND i.paid = FALSE AND i.due_date < CURRENT_DATE
		)`
	result, err := pool.Exec(context.Background(), query,
		models.DebtStatusVencida, models.DebtStatusAtiva, models.DebtStatusPendente)
	if err != nil {
		return 0, fmt.Errorf("ошибка при пометке просроченных долгов: %v", err)
	}
	return int(result.RowsAffected()), nil
}
