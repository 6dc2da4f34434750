package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

// CreateTransaction записывает одну строку в леджер. Никакие другие записи
// при этом не изменяются: прогресс целей и остатки долгов выводятся при
// чтении.
func CreateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransaction, err)
	}

	query := `
		INSERT INTO transactions (user_id, category_id, kind, amount, description, occurred_at, goal_id, installment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query,
		transaction.UserID,
		transaction.CategoryID,
		transaction.Kind,
		transaction.Amount,
		transaction.Description,
		transaction.OccurredAt,
		transaction.GoalID,
		transaction.InstallmentID).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %v", err)
	}
	return nil
}

func GetTransactionByID(pool *pgxpool.Pool, transactionID, userID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, kind, amount, description, occurred_at, goal_id, installment_id, created_at
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	transaction := &models.Transaction{}
	err := pool.QueryRow(context.Background(), query, transactionID, userID).Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.CategoryID,
		&transaction.Kind,
		&transaction.Amount,
		&transaction.Description,
		&transaction.OccurredAt,
		&transaction.GoalID,
		&transaction.InstallmentID,
		&transaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %v", err)
	}

	return transaction, nil
}

func GetTransactionsByUserID(pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, kind, amount, description, occurred_at, goal_id, installment_id, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY occurred_at DESC`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций: %v", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Kind, &t.Amount, &t.Description,
			&t.OccurredAt, &t.GoalID, &t.InstallmentID, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// DeleteTransaction удаляет транзакцию владельца. Чужая или несуществующая
// транзакция в обоих случаях даёт ErrNotFound.
func DeleteTransaction(pool *pgxpool.Pool, transactionID, userID int) error {
	query := `
		DELETE FROM transactions
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления транзакции: %v", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
