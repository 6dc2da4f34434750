package database

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/finance-ledger/internal/config"
)

// ConnectDB открывает пул соединений по DB_CONN или переменным DB_*.
// Файл .env подхватывается при наличии, но переменные окружения работают
// и без него.
func ConnectDB() (*pgxpool.Pool, error) {
	_ = godotenv.Load()

	connStr := os.Getenv("DB_CONN")
	if connStr == "" {
		connStr = config.BuildDBConn()
	}
	if connStr == "" {
		return nil, fmt.Errorf("не задано подключение к БД: нужен DB_CONN или DB_HOST")
	}

	return pgxpool.New(context.Background(), connStr)
}
