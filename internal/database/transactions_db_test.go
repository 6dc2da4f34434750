package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func TestCreateTransaction(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	transaction := &models.Transaction{
		UserID:      user.ID,
		Kind:        models.KindExpense,
		Amount:      decimal.NewFromFloat(150.75),
		Description: "Продукты",
		OccurredAt:  time.Now(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	created, err := database.GetTransactionByID(pool, transaction.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения транзакции по ID: %v", err)
	}
	if !created.Amount.Equal(transaction.Amount) || created.Description != transaction.Description {
		t.Errorf("данные транзакции не совпадают: получили %+v, хотели %+v", created, transaction)
	}
}

func TestCreateTransactionInvalid(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	cases := []models.Transaction{
		{UserID: user.ID, Kind: "transfer", Amount: decimal.NewFromInt(10), Description: "тип", OccurredAt: time.Now()},
		{UserID: user.ID, Kind: models.KindIncome, Amount: decimal.Zero, Description: "сумма", OccurredAt: time.Now()},
		{UserID: user.ID, Kind: models.KindIncome, Amount: decimal.NewFromInt(-5), Description: "знак", OccurredAt: time.Now()},
		{UserID: user.ID, Kind: models.KindIncome, Amount: decimal.NewFromInt(10), Description: "  ", OccurredAt: time.Now()},
	}

	for _, tx := range cases {
		tx := tx
		err := database.CreateTransaction(pool, &tx)
		if err == nil {
			t.Errorf("некорректная транзакция %+v попала в леджер", tx)
			continue
		}
		// Ошибка валидации различима для HTTP-слоя.
		if !errors.Is(err, database.ErrInvalidTransaction) {
			t.Errorf("транзакция %+v: получили %v, хотели ErrInvalidTransaction", tx, err)
		}
	}
}

func TestGetTransactionsOrder(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	old := &models.Transaction{
		UserID: user.ID, Kind: models.KindIncome,
		Amount: decimal.NewFromInt(10), Description: "старая",
		OccurredAt: time.Now().AddDate(0, 0, -10),
	}
	recent := &models.Transaction{
		UserID: user.ID, Kind: models.KindIncome,
		Amount: decimal.NewFromInt(20), Description: "свежая",
		OccurredAt: time.Now(),
	}
	for _, tx := range []*models.Transaction{old, recent} {
		if err := database.CreateTransaction(pool, tx); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	transactions, err := database.GetTransactionsByUserID(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения транзакций: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("ожидали 2 транзакции, получили %d", len(transactions))
	}
	// Свежие записи идут первыми.
	if transactions[0].ID != recent.ID {
		t.Errorf("транзакции должны быть отсортированы от новых к старым")
	}
}

func TestDeleteTransaction(t *testing.T) {
	pool := testPool(t)
	user := newTestUser(t, pool)

	transaction := &models.Transaction{
		UserID: user.ID, Kind: models.KindExpense,
		Amount: decimal.NewFromInt(300), Description: "На удаление",
		OccurredAt: time.Now(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	if err := database.DeleteTransaction(pool, transaction.ID, user.ID); err != nil {
		t.Fatalf("ошибка удаления транзакции: %v", err)
	}

	if _, err := database.GetTransactionByID(pool, transaction.ID, user.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("транзакция всё ещё существует после удаления")
	}
}

func TestDeleteTransactionNotOwner(t *testing.T) {
	pool := testPool(t)
	owner := newTestUser(t, pool)
	stranger := newTestUser(t, pool)

	transaction := &models.Transaction{
		UserID: owner.ID, Kind: models.KindExpense,
		Amount: decimal.NewFromInt(50), Description: "Чужая запись",
		OccurredAt: time.Now(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	// Чужая транзакция неотличима от несуществующей.
	err := database.DeleteTransaction(pool, transaction.ID, stranger.ID)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удаление чужой транзакции: получили %v, хотели ErrNotFound", err)
	}

	if _, err := database.GetTransactionByID(pool, transaction.ID, owner.ID); err != nil {
		t.Errorf("транзакция владельца не должна была удалиться: %v", err)
	}
}
