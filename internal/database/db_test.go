package database_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

// testPool подключается к тестовой БД. Без настроенного окружения
// интеграционные тесты пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	_ = godotenv.Load()
	if os.Getenv("DB_HOST") == "" && os.Getenv("DB_CONN") == "" {
		t.Skip("БД не настроена, пропускаем интеграционный тест")
	}

	pool, err := database.ConnectDB()
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// newTestUser регистрирует пользователя с уникальным email.
func newTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Тестовый Пользователь",
		Email:    fmt.Sprintf("test.%d@example.com", time.Now().UnixNano()),
		Password: "надёжный-пароль",
	}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("ошибка регистрации пользователя: %v", err)
	}
	return user
}
