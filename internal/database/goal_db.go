package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

// CreateGoal добавляет новую цель в базу данных
func CreateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		INSERT INTO goals (user_id, name, target_amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		goal.UserID,
		goal.Name,
		goal.TargetAmount).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении цели: %v", err)
	}
	return nil
}

// GetGoalByID извлекает цель владельца по ID
func GetGoalByID(pool *pgxpool.Pool, goalID, userID int) (*models.Goal, error) {
	query := `
		SELECT id, user_id, name, target_amount, created_at
		FROM goals
		WHERE id = $1 AND user_id = $2`

	goal := &models.Goal{}
	err := pool.QueryRow(context.Background(), query, goalID, userID).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Name,
		&goal.TargetAmount,
		&goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении цели: %v", err)
	}
	return goal, nil
}

// GetAllGoals извлекает все цели пользователя
func GetAllGoals(pool *pgxpool.Pool, userID int) ([]models.Goal, error) {
	query := `SELECT id, user_id, name, target_amount, created_at FROM goals WHERE user_id = $1`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении целей: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.Name, &goal.TargetAmount, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}

// UpdateGoal обновляет информацию о цели
func UpdateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2
		WHERE id = $3 AND user_id = $4`
	result, err := pool.Exec(context.Background(), query,
		goal.Name,
		goal.TargetAmount,
		goal.ID,
		goal.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления цели: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteGoal удаляет цель по ID
func DeleteGoal(pool *pgxpool.Pool, goalID, userID int) error {
	query := `
		DELETE FROM goals
		WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, goalID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления цели: %v", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetGoalContributions собирает прогресс цели из леджера: доходные
// транзакции с меткой цели, последние сверху. Итог складывается из
// выбранных строк при каждом вызове, в базе он не кешируется.
func GetGoalContributions(pool *pgxpool.Pool, goalID, userID int) (*models.GoalProgress, error) {
	// Сначала убеждаемся, что цель существует и принадлежит пользователю.
	if _, err := GetGoalByID(pool, goalID, userID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, category_id, kind, amount, description, occurred_at, goal_id, installment_id, created_at
		FROM transactions
		WHERE goal_id = $1 AND user_id = $2 AND kind = 'income'
		ORDER BY occurred_at DESC`
	rows, err := pool.Query(context.Background(), query, goalID, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении взносов по цели: %v", err)
	}
	defer rows.Close()

	var contributions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Kind, &t.Amount, &t.Description,
			&t.OccurredAt, &t.GoalID, &t.InstallmentID, &t.CreatedAt); err != nil {
			return nil, err
		}
		contributions = append(contributions, t)
	}

	return &models.GoalProgress{
		Contributions: contributions,
		Total:         models.ContributionsTotal(contributions),
	}, nil
}
