package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

// GenerateTestUsers создаёт случайных пользователей и возвращает их ID.
func GenerateTestUsers(pool *pgxpool.Pool, numUsers int) []int {
	ids := make([]int, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 8), // Генерация случайного пароля
			Name:     gofakeit.Name(),
		}
		if err := database.RegisterUser(pool, user); err != nil {
			log.Fatalf("ошибка при добавлении пользователя: %v", err)
		}
		ids = append(ids, user.ID)
	}
	return ids
}

func GenerateTestCategories(pool *pgxpool.Pool, userIDs []int, numCategories int) []int {
	ids := make([]int, 0, numCategories)
	for i := 0; i < numCategories; i++ {
		category := &models.Category{
			UserID: userIDs[rand.Intn(len(userIDs))],
			Name:   gofakeit.Word(),
			Type:   randomKind(),
		}

		if err := database.CreateCategory(pool, category); err != nil {
			log.Fatalf("ошибка при добавлении категории: %v", err)
		}
		ids = append(ids, category.ID)
	}
	return ids
}

func randomKind() string {
	if rand.Intn(2) == 0 {
		return models.KindExpense
	}
	return models.KindIncome
}

func GenerateTestTransactions(pool *pgxpool.Pool, userIDs []int, numTransactions int) {
	for i := 0; i < numTransactions; i++ {
		transaction := &models.Transaction{
			UserID:      userIDs[rand.Intn(len(userIDs))],
			Kind:        randomKind(),
			Amount:      decimal.NewFromFloat(gofakeit.Price(1, 1000)),    // Случайная сумма (1.00 до 1000.00)
			Description: gofakeit.Sentence(5),                             // Случайное описание транзакции
			OccurredAt:  time.Now().AddDate(0, 0, -rand.Intn(30)),         // Случайная дата в прошлом 30 дней
		}

		if err := database.CreateTransaction(pool, transaction); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}

func GenerateTestGoals(pool *pgxpool.Pool, userIDs []int, numGoals int) {
	for i := 0; i < numGoals; i++ {
		goal := &models.Goal{
			UserID:       userIDs[rand.Intn(len(userIDs))],
			Name:         gofakeit.BuzzWord(),
			TargetAmount: decimal.NewFromFloat(gofakeit.Price(100, 10000)),
		}

		if err := database.CreateGoal(pool, goal); err != nil {
			log.Fatalf("ошибка при добавлении цели: %v", err)
		}
	}
}

// GenerateTestDebts создаёт долги с графиком платежей.
func GenerateTestDebts(pool *pgxpool.Pool, userIDs []int, numDebts int) {
	for i := 0; i < numDebts; i++ {
		userID := userIDs[rand.Intn(len(userIDs))]
		total := gofakeit.Price(500, 5000)
		debt := &models.Debt{
			UserID:      userID,
			Name:        gofakeit.Company(),
			TotalAmount: decimal.NewFromFloat(total),
			Status:      models.DebtStatusAtiva,
		}
		if err := database.CreateDebt(pool, debt); err != nil {
			log.Fatalf("ошибка при добавлении долга: %v", err)
		}

		parts := rand.Intn(5) + 2
		perPart := decimal.NewFromFloat(total).DivRound(decimal.NewFromInt(int64(parts)), 2)
		for p := 0; p < parts; p++ {
			installment := &models.Installment{
				DebtID:  debt.ID,
				DueDate: time.Now().AddDate(0, p+1, 0),
				Amount:  perPart,
			}
			if err := database.AddInstallment(pool, installment, userID); err != nil {
				log.Fatalf("ошибка при добавлении платежа: %v", err)
			}
		}
	}
}

func GenerateTestPaymentReminders(pool *pgxpool.Pool, userIDs []int, numReminders int) {
	for i := 0; i < numReminders; i++ {
		reminder := &models.PaymentReminder{
			UserID:      userIDs[rand.Intn(len(userIDs))],
			Description: gofakeit.Sentence(5),                       // Случайное описание
			Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)),
			DueDate:     time.Now().AddDate(0, 0, rand.Intn(30)+1), // Случайная дата в будущем (до 30 дней)
		}

		if err := database.CreatePaymentReminder(pool, reminder); err != nil {
			log.Fatalf("ошибка при добавлении напоминания: %v", err)
		}
	}
}
