package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func CreatePaymentReminder(pool *pgxpool.Pool, reminder *models.PaymentReminder) error {
	// Проверка на валидность даты
	if reminder.DueDate.IsZero() || reminder.DueDate.Before(time.Now().Truncate(24*time.Hour)) {
		return fmt.Errorf("некорректная или прошедшая дата напоминания")
	}

	// Проверка на валидность суммы
	if reminder.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("некорректная сумма напоминания")
	}

	query := `
        INSERT INTO payment_reminders (user_id, description, amount, due_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id`
	err := pool.QueryRow(context.Background(), query,
		reminder.UserID,
		reminder.Description,
		reminder.Amount,
		reminder.DueDate).Scan(&reminder.ID)

	if err != nil {
		return fmt.Errorf("ошибка добавления напоминания: %v", err)
	}

	// Запланировать одно уведомление в день события
	if err := ScheduleSingleNotification(pool, reminder); err != nil {
		return fmt.Errorf("ошибка при планировании уведомлений: %v", err)
	}

	return nil
}

// ScheduleSingleNotification планирует уведомление в день события.
func ScheduleSingleNotification(pool *pgxpool.Pool, reminder *models.PaymentReminder) error {
	notificationDate := reminder.DueDate
	message := fmt.Sprintf("Напоминание: нужно заплатить %s за %s до %s",
		reminder.Amount.StringFixed(2), reminder.Description, notificationDate.Format("2006-01-02"))

	notification := models.Notification{
		UserID:   reminder.UserID,
		Message:  message,
		IsRead:   false,
		DateWhen: notificationDate,
	}

	// Уведомление на прошедшую дату не создаём.
	if notification.DateWhen.Before(time.Now()) {
		log.Printf("Дата уведомления для напоминания ID %d уже прошла: %v", reminder.ID, notification.DateWhen)
		return nil
	}

	if err := CreateNotification(pool, &notification); err != nil {
		return fmt.Errorf("ошибка при создании уведомления: %w", err)
	}

	return nil
}

func GetPaymentReminderByID(pool *pgxpool.Pool, reminderID, userID int) (*models.PaymentReminder, error) {
	query := `
		SELECT id, user_id, description, amount, due_date, notified_at
		FROM payment_reminders
		WHERE id = $1 AND user_id = $2`

	reminder := &models.PaymentReminder{}
	err := pool.QueryRow(context.Background(), query, reminderID, userID).Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.Description,
		&reminder.Amount,
		&reminder.DueDate,
		&reminder.NotifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения напоминания: %v", err)
	}

	return reminder, nil
}

func GetPaymentRemindersByUserID(pool *pgxpool.Pool, userID int) ([]models.PaymentReminder, error) {
	query := `SELECT id, user_id, description, amount, due_date, notified_at FROM payment_reminders WHERE user_id = $1`
	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения напоминаний: %v", err)
	}
	defer rows.Close()

	var reminders []models.PaymentReminder
	for rows.Next() {
		var reminder models.PaymentReminder
		if err := rows.Scan(&reminder.ID, &reminder.UserID, &reminder.Description, &reminder.Amount, &reminder.DueDate, &reminder.NotifiedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, nil
}

func UpdatePaymentReminder(pool *pgxpool.Pool, reminder *models.PaymentReminder) error {
	// Изменённое напоминание рассылается заново.
	query := `
		UPDATE payment_reminders
		SET description = $1, amount = $2, due_date = $3, notified_at = NULL
		WHERE id = $4 AND user_id = $5`

	result, err := pool.Exec(context.Background(), query,
		reminder.Description,
		reminder.Amount,
		reminder.DueDate,
		reminder.ID,
		reminder.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления напоминания: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeletePaymentReminder(pool *pgxpool.Pool, reminderID, userID int) error {
	query := `
		DELETE FROM payment_reminders
		WHERE id = $1 AND user_id = $2`

	result, err := pool.Exec(context.Background(), query, reminderID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления напоминания: %v", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DueReminder — напоминание вместе с адресатом, для почтовой рассылки.
type DueReminder struct {
	Reminder models.PaymentReminder
	Email    string
	Name     string
}

// GetRemindersDueBy возвращает напоминания со сроком до указанной даты
// вместе с данными владельца. Уже разосланные напоминания (notified_at
// заполнен) в выборку не попадают, иначе рассылка повторялась бы каждый
// день.
func GetRemindersDueBy(pool *pgxpool.Pool, by time.Time) ([]DueReminder, error) {
	query := `
		SELECT r.id, r.user_id, r.description, r.amount, r.due_date, u.email, u.name
		FROM payment_reminders r
		JOIN users u ON u.id = r.user_id
		WHERE r.due_date <= $1 AND r.notified_at IS NULL`
	rows, err := pool.Query(context.Background(), query, by)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения напоминаний для рассылки: %v", err)
	}
	defer rows.Close()

	var due []DueReminder
	for rows.Next() {
		var d DueReminder
		if err := rows.Scan(&d.Reminder.ID, &d.Reminder.UserID, &d.Reminder.Description,
			&d.Reminder.Amount, &d.Reminder.DueDate, &d.Email, &d.Name); err != nil {
			return nil, err
		}
		due = append(due, d)
	}
	return due, nil
}

// MarkReminderNotified фиксирует отправку письма по напоминанию.
func MarkReminderNotified(pool *pgxpool.Pool, reminderID int) error {
	result, err := pool.Exec(context.Background(),
		`UPDATE payment_reminders SET notified_at = NOW() WHERE id = $1`, reminderID)
	if err != nil {
		return fmt.Errorf("ошибка отметки напоминания: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
