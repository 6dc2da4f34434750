package database

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/net/context"
)

type UserStat struct {
	TotalUsers int `json:"total_users"`
	WithGoals  int `json:"users_with_goals"`
	WithDebts  int `json:"users_with_debts"`
}

type MonthlyRegistrations struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// LedgerVolume — суммарный оборот леджера по всем пользователям.
type LedgerVolume struct {
	Transactions int             `json:"transactions"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
}

func GetUserStats(pool *pgxpool.Pool) (*UserStat, error) {
	var stats UserStat
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(DISTINCT user_id) FROM goals) AS with_goals,
			(SELECT COUNT(DISTINCT user_id) FROM debts) AS with_debts
	`

	err := pool.QueryRow(context.Background(), query).Scan(&stats.TotalUsers, &stats.WithGoals, &stats.WithDebts)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения статистики пользователей: %v", err)
	}
	return &stats, nil
}

func GetRegistrationsByMonth(pool *pgxpool.Pool) ([]MonthlyRegistrations, error) {
	query := `
		SELECT
			TO_CHAR(created_at, 'YYYY-MM') AS month,
			COUNT(*)
		FROM users
		GROUP BY month
		ORDER BY month ASC
	`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения регистраций по месяцам: %v", err)
	}
	defer rows.Close()

	var registrations []MonthlyRegistrations
	for rows.Next() {
		var reg MonthlyRegistrations
		if err := rows.Scan(&reg.Month, &reg.Count); err != nil {
			return nil, fmt.Errorf("ошибка обработки данных регистраций: %v", err)
		}
		registrations = append(registrations, reg)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("ошибка обработки регистраций по месяцам: %v", rows.Err())
	}

	return registrations, nil
}

func GetLedgerVolume(pool *pgxpool.Pool) (*LedgerVolume, error) {
	var volume LedgerVolume
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN kind = 'income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = 'expense' THEN amount ELSE 0 END), 0)
		FROM transactions
	`

	err := pool.QueryRow(context.Background(), query).Scan(&volume.Transactions, &volume.Income, &volume.Expense)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения оборота леджера: %v", err)
	}
	return &volume, nil
}
