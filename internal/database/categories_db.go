package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func CreateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `
        INSERT INTO categories (user_id, name, type) VALUES ($1, $2, $3)
        RETURNING id, created_at`

	err := pool.QueryRow(context.Background(), query, category.UserID, category.Name, category.Type).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении категории: %v", err)
	}
	return nil
}

func GetCategoryByID(pool *pgxpool.Pool, categoryID, userID int) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, type, created_at
		FROM categories
		WHERE id = $1 AND user_id = $2`

	category := &models.Category{}
	err := pool.QueryRow(context.Background(), query, categoryID, userID).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Type,
		&category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении категории: %v", err)
	}

	return category, nil
}

func GetCategoriesByUserID(pool *pgxpool.Pool, userID int) ([]models.Category, error) {
	query := `SELECT id, user_id, name, type, created_at FROM categories WHERE user_id = $1`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %v", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Type, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func UpdateCategory(pool *pgxpool.Pool, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, type = $2
		WHERE id = $3 AND user_id = $4`

	result, err := pool.Exec(context.Background(), query, category.Name, category.Type, category.ID, category.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления категории: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCategory(pool *pgxpool.Pool, categoryID, userID int) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, categoryID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении категории: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
