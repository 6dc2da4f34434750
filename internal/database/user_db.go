package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) { // получение пользователя по айдишнику
	query := `SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1`
	row := pool.QueryRow(context.Background(), query, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %v", err)
	}

	return &user, nil
}

func UpdateUser(pool *pgxpool.Pool, user *models.User) error { //обновление данных пользователя
	query := `UPDATE users SET name = $1, email = $2, updated_at = NOW() WHERE id = $3`
	result, err := pool.Exec(context.Background(), query, user.Name, user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("ошибка обновления пользователя: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
