package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/utils"
)

// Наполняет базу тестовыми данными.
func main() {
	users := flag.Int("users", 10, "сколько пользователей создать")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("файл .env не загружен: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	userIDs := utils.GenerateTestUsers(pool, *users)
	utils.GenerateTestCategories(pool, userIDs, *users*2)
	utils.GenerateTestTransactions(pool, userIDs, *users*10)
	utils.GenerateTestGoals(pool, userIDs, *users)
	utils.GenerateTestDebts(pool, userIDs, *users)
	utils.GenerateTestPaymentReminders(pool, userIDs, *users)

	log.Printf("Сгенерировано пользователей: %d", len(userIDs))
}
