package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func GetUserSettingsByID(pool *pgxpool.Pool, userID int) (*models.UserSettings, error) {
	query := `
		SELECT id, user_id, currency, old_currency, theme, notification_volume, auto_updates, weekly_reports
		FROM user_settings
		WHERE user_id = $1`

	settings := &models.UserSettings{}
	err := pool.QueryRow(context.Background(), query, userID).Scan(
		&settings.ID,
		&settings.UserID,
		&settings.Currency,
		&settings.OldCurrency,
		&settings.Theme,
		&settings.NotificationVolume,
		&settings.AutoUpdates,
		&settings.WeeklyReports,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при извлечении настроек пользователя: %v", err)
	}
	return settings, nil
}

func UpdateUserSettings(pool *pgxpool.Pool, settings *models.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, currency, old_currency, theme, notification_volume, auto_updates, weekly_reports)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			currency = EXCLUDED.currency,
			old_currency = EXCLUDED.old_currency,
			theme = EXCLUDED.theme,
			notification_volume = EXCLUDED.notification_volume,
			auto_updates = EXCLUDED.auto_updates,
			weekly_reports = EXCLUDED.weekly_reports
		RETURNING id`
	err := pool.QueryRow(context.Background(), query,
		settings.UserID,
		settings.Currency,
		settings.OldCurrency,
		settings.Theme,
		settings.NotificationVolume,
		settings.AutoUpdates,
		settings.WeeklyReports).Scan(&settings.ID)
	if err != nil {
		return fmt.Errorf("ошибка обновления настроек пользователя: %v", err)
	}
	return nil
}
