package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser регистрирует нового пользователя. Пароль хранится только в
// виде bcrypt-хеша, короткие пароли отклоняются.
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	if len(user.Password) < 6 {
		return ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %v", err)
	}

	query := `
		INSERT INTO users (email, password, name) VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err = pool.QueryRow(context.Background(), query, user.Email, hashedPassword, user.Name).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("ошибка при добавлении пользователя: %v", err)
	}
	user.Password = ""
	return nil
}

// AuthenticateUser проверяет учётные данные. Неизвестный email и неверный
// пароль различаются: HTTP-слой отвечает на них 404 и 401 соответственно.
func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, password, name FROM users WHERE email = $1`
	err := pool.QueryRow(context.Background(), query, email).Scan(&user.ID, &user.Email, &user.Password, &user.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	user.Password = ""
	return &user, nil
}
