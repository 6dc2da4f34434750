package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func CreateNotification(pool *pgxpool.Pool, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, message, is_read, datewhen)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := pool.QueryRow(context.Background(), query,
		notification.UserID,
		notification.Message,
		notification.IsRead,
		notification.DateWhen).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка создания уведомления: %v", err)
	}
	return nil
}

func GetNotificationsByUserID(pool *pgxpool.Pool, userID int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, message, is_read, created_at, datewhen
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения уведомлений: %v", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt, &n.DateWhen); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func MarkNotificationAsRead(pool *pgxpool.Pool, notificationID, userID int) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("ошибка пометки уведомления: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteNotification(pool *pgxpool.Pool, notificationID, userID int) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления уведомления: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
