package database_test

import (
	"errors"
	"testing"

	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func TestUserSettingsUpsert(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	settings := &models.UserSettings{
		UserID:             user.ID,
		Currency:           "EUR",
		OldCurrency:        "USD",
		Theme:              "dark",
		NotificationVolume: 70,
		AutoUpdates:        true,
		WeeklyReports:      true,
	}
	if err := database.UpdateUserSettings(pool, settings); err != nil {
		t.Fatalf("ошибка сохранения настроек: %v", err)
	}

	stored, err := database.GetUserSettingsByID(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения настроек: %v", err)
	}
	if stored.Currency != "EUR" || stored.Theme != "dark" {
		t.Errorf("настройки не совпадают: %+v", stored)
	}

	// Повторное сохранение обновляет существующую строку.
	settings.Theme = "light"
	if err := database.UpdateUserSettings(pool, settings); err != nil {
		t.Fatalf("ошибка повторного сохранения настроек: %v", err)
	}

	stored, err = database.GetUserSettingsByID(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения настроек: %v", err)
	}
	if stored.Theme != "light" {
		t.Errorf("тема после обновления: %q", stored.Theme)
	}
	if stored.ID != settings.ID {
		t.Errorf("повторное сохранение не должно создавать новую строку")
	}
}

func TestGetUserSettingsMissing(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	_, err := database.GetUserSettingsByID(pool, user.ID)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("настройки нового пользователя: получили %v, хотели ErrNotFound", err)
	}
}
