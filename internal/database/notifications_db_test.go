package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func TestMarkNotificationAsRead(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	notification := &models.Notification{
		UserID:   user.ID,
		Message:  "Тестовое уведомление",
		DateWhen: time.Now().AddDate(0, 0, 1),
	}
	if err := database.CreateNotification(pool, notification); err != nil {
		t.Fatalf("ошибка создания уведомления: %v", err)
	}

	if err := database.MarkNotificationAsRead(pool, notification.ID, user.ID); err != nil {
		t.Fatalf("ошибка пометки уведомления: %v", err)
	}

	notifications, err := database.GetNotificationsByUserID(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения уведомлений: %v", err)
	}
	if len(notifications) != 1 || !notifications[0].IsRead {
		t.Errorf("уведомление должно быть помечено прочитанным: %+v", notifications)
	}
}

func TestDeleteNotificationNotOwner(t *testing.T) {
	pool := testPool(t)
	owner := newTestUser(t, pool)
	stranger := newTestUser(t, pool)

	notification := &models.Notification{
		UserID:   owner.ID,
		Message:  "Чужое уведомление",
		DateWhen: time.Now().AddDate(0, 0, 1),
	}
	if err := database.CreateNotification(pool, notification); err != nil {
		t.Fatalf("ошибка создания уведомления: %v", err)
	}

	if err := database.DeleteNotification(pool, notification.ID, stranger.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удаление чужого уведомления: получили %v, хотели ErrNotFound", err)
	}
}
