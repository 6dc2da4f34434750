package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/valeriaulyamaeva/finance-ledger/internal/auth"
	"github.com/valeriaulyamaeva/finance-ledger/internal/config"
	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
	"github.com/valeriaulyamaeva/finance-ledger/internal/handlers"
	"github.com/valeriaulyamaeva/finance-ledger/internal/integrations/cbr"
	"github.com/valeriaulyamaeva/finance-ledger/internal/mailer"
	"github.com/valeriaulyamaeva/finance-ledger/internal/routes"
	"github.com/valeriaulyamaeva/finance-ledger/models"
	"github.com/valeriaulyamaeva/finance-ledger/utils"
)

const sessionTTL = 24 * time.Hour

func ScheduleOverdueDebtCheck(pool *pgxpool.Pool, logger *logrus.Logger) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		marked, err := database.MarkOverdueDebts(pool)
		if err != nil {
			logger.Errorf("Ошибка пометки просроченных долгов: %v", err)
			return
		}
		if marked > 0 {
			logger.Infof("Долгов переведено в VENCIDA: %d", marked)
		}
	})
	if err != nil {
		logger.Fatalf("Ошибка настройки CRON-задачи для просроченных долгов: %v", err)
	}
	c.Start()
}

func ScheduleReminderDispatch(pool *pgxpool.Pool, sender *mailer.Sender, logger *logrus.Logger) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		due, err := database.GetRemindersDueBy(pool, time.Now().AddDate(0, 0, 3))
		if err != nil {
			logger.Errorf("Ошибка выборки напоминаний для рассылки: %v", err)
			return
		}
		for _, d := range due {
			overdue := d.Reminder.DueDate.Before(time.Now().Truncate(24 * time.Hour))
			if err := sender.SendPaymentReminder(d.Email, d.Name, d.Reminder.Description,
				d.Reminder.Amount, d.Reminder.DueDate, overdue); err != nil {
				// Неотправленное напоминание останется в выборке и уйдёт
				// при следующем запуске.
				logger.Errorf("Ошибка отправки напоминания пользователю %d: %v", d.Reminder.UserID, err)
				continue
			}
			if err := database.MarkReminderNotified(pool, d.Reminder.ID); err != nil {
				logger.Errorf("Ошибка отметки напоминания %d: %v", d.Reminder.ID, err)
			}
		}
	})
	if err != nil {
		logger.Fatalf("Ошибка настройки CRON-задачи для рассылки напоминаний: %v", err)
	}
	c.Start()
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:3001" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Warnf("Файл .env не загружен: %v", err)
	}

	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if err := database.RunMigrations(cfg.DBConn); err != nil {
		logger.Fatalf("Ошибка применения миграций: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DBConn)
	if err != nil {
		logger.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	allow := auth.NewAllowlist(cfg.AdminEmails)
	sender := mailer.NewSender(cfg, logger)
	rateCache := utils.NewRateCache(cbr.NewClient(cfg.CBRURL, logger), logger)

	ScheduleOverdueDebtCheck(pool, logger)
	ScheduleReminderDispatch(pool, sender, logger)

	r := gin.Default()
	r.Use(CORSMiddleware())

	r.POST("/register", func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных. Проверьте введённые значения."})
			return
		}
		if user.Name == "" || user.Email == "" || user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Все поля обязательны для заполнения"})
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			switch {
			case errors.Is(err, database.ErrWeakPassword), errors.Is(err, database.ErrEmailTaken):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Errorf("Ошибка при регистрации пользователя: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка регистрации"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": user.ID, "name": user.Name, "email": user.Email})
	})

	r.POST("/login", func(c *gin.Context) {
		var credentials models.User
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка ввода данных"})
			return
		}

		user, err := database.AuthenticateUser(pool, credentials.Email, credentials.Password)
		if err != nil {
			// Неизвестный email и неверный пароль различаются намеренно.
			switch {
			case errors.Is(err, database.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
			case errors.Is(err, database.ErrWrongPassword):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный пароль"})
			default:
				logger.Errorf("Ошибка авторизации: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка авторизации"})
			}
			return
		}

		token, err := auth.GenerateToken(user.ID, user.Email, cfg.JWTSecret, sessionTTL)
		if err != nil {
			logger.Errorf("Ошибка выпуска токена: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка авторизации"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	})

	api := r.Group("/")
	api.Use(auth.Middleware(cfg.JWTSecret))

	api.POST("/categories", func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат категории"})
			return
		}
		category.UserID = auth.UserID(c)
		if err := database.CreateCategory(pool, &category); err != nil {
			logger.Errorf("Ошибка при создании категории: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при создании категории"})
			return
		}
		c.JSON(http.StatusCreated, category)
	})

	api.GET("/categories", func(c *gin.Context) {
		categories, err := database.GetCategoriesByUserID(pool, auth.UserID(c))
		if err != nil {
			logger.Errorf("Ошибка при получении категорий: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении списка категорий"})
			return
		}
		c.JSON(http.StatusOK, categories)
	})

	api.PUT("/categories/:id", func(c *gin.Context) {
		var category models.Category
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор категории"})
			return
		}
		if err := c.ShouldBindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных для категории"})
			return
		}
		category.ID = id
		category.UserID = auth.UserID(c)
		if err := database.UpdateCategory(pool, &category); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Категория не найдена"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка обновления категории"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Категория успешно обновлена"})
	})

	api.DELETE("/categories/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор категории"})
			return
		}
		if err := database.DeleteCategory(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Категория не найдена"})
				return
			}
			logger.Errorf("Ошибка удаления категории с ID %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при удалении категории"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Категория успешно удалена"})
	})

	api.POST("/transactions", func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод", "details": err.Error()})
			return
		}
		transaction.UserID = auth.UserID(c)
		if transaction.OccurredAt.IsZero() {
			transaction.OccurredAt = time.Now()
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			if errors.Is(err, database.ErrInvalidTransaction) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Errorf("Ошибка при создании транзакции: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания транзакции"})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	})

	api.POST("/transactions/adjustment", func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}
		transaction.UserID = auth.UserID(c)
		transaction.OccurredAt = time.Now()

		// Описание проверяется до добавления префикса.
		if err := transaction.MarkAdjustment(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			if errors.Is(err, database.ErrInvalidTransaction) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Errorf("Ошибка при создании корректировки: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания транзакции"})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	})

	api.GET("/transactions", func(c *gin.Context) {
		transactions, err := database.GetTransactionsByUserID(pool, auth.UserID(c))
		if err != nil {
			logger.Errorf("Ошибка получения транзакций: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения транзакций"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	})

	api.DELETE("/transactions/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор транзакции"})
			return
		}
		if err := database.DeleteTransaction(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Транзакция не найдена"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления транзакции"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Транзакция успешно удалена"})
	})

	api.POST("/goals", func(c *gin.Context) {
		var goal models.Goal
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		goal.UserID = auth.UserID(c)
		if goal.Name == "" || goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Название и положительная сумма цели обязательны"})
			return
		}

		if err := database.CreateGoal(pool, &goal); err != nil {
			logger.Errorf("Ошибка при создании цели: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при создании цели"})
			return
		}
		c.JSON(http.StatusCreated, goal)
	})

	api.GET("/goals", func(c *gin.Context) {
		goals, err := database.GetAllGoals(pool, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении списка целей"})
			return
		}
		c.JSON(http.StatusOK, goals)
	})

	// Прогресс цели: взносы из леджера, последние сверху, плюс итог.
	api.GET("/goals/:id/contributions", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор цели"})
			return
		}

		progress, err := database.GetGoalContributions(pool, id, auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Цель не найдена"})
				return
			}
			logger.Errorf("Ошибка получения взносов по цели: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения взносов"})
			return
		}
		c.JSON(http.StatusOK, progress)
	})

	api.PUT("/goals/:id", func(c *gin.Context) {
		var goal models.Goal
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор цели"})
			return
		}
		if err := c.ShouldBindJSON(&goal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		goal.ID = id
		goal.UserID = auth.UserID(c)

		if err := database.UpdateGoal(pool, &goal); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Цель не найдена"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при обновлении цели"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Цель успешно обновлена"})
	})

	api.DELETE("/goals/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор цели"})
			return
		}

		if err := database.DeleteGoal(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Цель не найдена"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при удалении цели"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Цель успешно удалена"})
	})

	api.POST("/debts", func(c *gin.Context) {
		var debt models.Debt
		if err := c.ShouldBindJSON(&debt); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		debt.UserID = auth.UserID(c)
		if debt.Status != "" && !models.ValidDebtStatus(debt.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестный статус долга"})
			return
		}

		if err := database.CreateDebt(pool, &debt); err != nil {
			logger.Errorf("Ошибка при создании долга: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при создании долга"})
			return
		}
		c.JSON(http.StatusCreated, debt)
	})

	api.GET("/debts", func(c *gin.Context) {
		debts, err := database.GetDebtsByUserID(pool, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении долгов"})
			return
		}
		c.JSON(http.StatusOK, debts)
	})

	api.GET("/debts/:id/installments", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор долга"})
			return
		}
		installments, err := database.GetInstallmentsByDebtID(pool, id, auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Долг не найден"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении платежей"})
			return
		}
		c.JSON(http.StatusOK, installments)
	})

	api.POST("/debts/:id/installments", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор долга"})
			return
		}
		var installment models.Installment
		if err := c.ShouldBindJSON(&installment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод данных"})
			return
		}
		installment.DebtID = id
		if installment.Amount.LessThanOrEqual(decimal.Zero) || installment.DueDate.IsZero() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма и срок платежа обязательны"})
			return
		}

		if err := database.AddInstallment(pool, &installment, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Долг не найден"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при добавлении платежа"})
			return
		}
		c.JSON(http.StatusCreated, installment)
	})

	api.POST("/installments/:id/pay", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор платежа"})
			return
		}

		debt, err := database.PayInstallment(pool, id, auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Платёж не найден"})
				return
			}
			logger.Errorf("Ошибка при оплате платежа: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при оплате платежа"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Платёж отмечен оплаченным", "debt": debt})
	})

	// Удаление платежа: владелец определяется через родительский долг.
	api.DELETE("/installments", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Query("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор платежа"})
			return
		}

		if err := database.DeleteInstallment(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Платёж не найден"})
				return
			}
			logger.Errorf("Ошибка удаления платежа: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления платежа"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Платёж успешно удалён"})
	})

	api.POST("/debts/:id/settle", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор долга"})
			return
		}

		debt, err := database.SettleDebt(pool, id, auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Долг не найден"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, debt)
	})

	api.DELETE("/debts/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор долга"})
			return
		}
		if err := database.DeleteDebt(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Долг не найден"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при удалении долга"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Долг успешно удалён"})
	})

	api.GET("/dashboard/total_balance", func(c *gin.Context) {
		balance, err := database.GetTotalBalance(pool, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении баланса"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total_balance": balance})
	})

	api.GET("/dashboard/income_expense_summary", func(c *gin.Context) {
		summary, err := database.GetIncomeExpenseSummary(pool, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении сводки"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})

	api.GET("/dashboard/category_expenses", func(c *gin.Context) {
		categoryExpenses, err := database.GetCategoryWiseExpenses(pool, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении расходов по категориям"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"category_expenses": categoryExpenses})
	})

	api.POST("/payment_reminders", func(c *gin.Context) {
		var reminder models.PaymentReminder
		if err := c.ShouldBindJSON(&reminder); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}
		reminder.UserID = auth.UserID(c)
		if err := database.CreatePaymentReminder(pool, &reminder); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, reminder)
	})

	api.GET("/payment_reminders", func(c *gin.Context) {
		reminders, err := database.GetPaymentRemindersByUserID(pool, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения напоминаний"})
			return
		}
		c.JSON(http.StatusOK, reminders)
	})

	api.GET("/payment_reminders/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор напоминания"})
			return
		}
		reminder, err := database.GetPaymentReminderByID(pool, id, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Напоминание о платеже не найдено"})
			return
		}
		c.JSON(http.StatusOK, reminder)
	})

	api.PUT("/payment_reminders/:id", func(c *gin.Context) {
		var reminder models.PaymentReminder
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор напоминания"})
			return
		}
		if err := c.ShouldBindJSON(&reminder); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}
		reminder.ID = id
		reminder.UserID = auth.UserID(c)
		if err := database.UpdatePaymentReminder(pool, &reminder); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Напоминание не найдено"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка обновления напоминания"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Напоминание о платеже успешно обновлено"})
	})

	api.DELETE("/payment_reminders/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор напоминания"})
			return
		}
		if err := database.DeletePaymentReminder(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Напоминание не найдено"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления напоминания"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Напоминание о платеже успешно удалено"})
	})

	api.GET("/notifications", func(c *gin.Context) {
		notifications, err := database.GetNotificationsByUserID(pool, auth.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения уведомлений"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	})

	api.PUT("/notifications/:id/read", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор уведомления"})
			return
		}
		if err := database.MarkNotificationAsRead(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Уведомление не найдено"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка пометки уведомления как прочитанного"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Уведомление помечено как прочитанное"})
	})

	api.DELETE("/notifications/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор уведомления"})
			return
		}
		if err := database.DeleteNotification(pool, id, auth.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Уведомление не найдено"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления уведомления"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Уведомление успешно удалено"})
	})

	api.GET("/users/me", func(c *gin.Context) {
		user, err := database.GetUserByID(pool, auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения профиля"})
			return
		}
		c.JSON(http.StatusOK, user)
	})

	api.PUT("/users/me", func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные профиля"})
			return
		}
		if user.Name == "" || user.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Имя и email обязательны"})
			return
		}
		user.ID = auth.UserID(c)

		if err := database.UpdateUser(pool, &user); err != nil {
			if errors.Is(err, database.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
				return
			}
			logger.Errorf("Ошибка обновления профиля: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка обновления профиля"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Профиль успешно обновлён"})
	})

	api.GET("/usersettings", func(c *gin.Context) {
		settings, err := database.GetUserSettingsByID(pool, auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Настройки пользователя не найдены"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при извлечении настроек пользователя"})
			return
		}
		c.JSON(http.StatusOK, settings)
	})

	api.PUT("/usersettings", func(c *gin.Context) {
		var settings models.UserSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
			return
		}
		settings.UserID = auth.UserID(c)

		if err := database.UpdateUserSettings(pool, &settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка обновления настроек пользователя"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Настройки успешно обновлены", "settings": settings})
	})

	api.GET("/usersettings/convert", func(c *gin.Context) {
		settings, err := database.GetUserSettingsByID(pool, auth.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Настройки пользователя не найдены"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при извлечении настроек пользователя"})
			return
		}

		amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "0"), 64)
		if err != nil || amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная сумма"})
			return
		}

		converted, err := rateCache.ConvertCurrency(amount, settings.OldCurrency, settings.Currency)
		if err != nil {
			logger.Errorf("Ошибка конвертации валюты: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения курсов валют"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"original_amount":  amount,
			"from_currency":    settings.OldCurrency,
			"to_currency":      settings.Currency,
			"converted_amount": converted,
		})
	})

	api.DELETE("/avatars", handlers.DeleteAvatarHandler(cfg.AvatarDir))

	// Админская панель собрана на gorilla/mux и закрыта allowlist-проверкой.
	adminRouter := routes.SetupAdminRouter(pool, allow, cfg.JWTSecret)
	r.Any("/admin/*path", gin.WrapH(adminRouter))

	logger.Infof("Запуск сервера на порту %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Ошибка при запуске сервера: %v", err)
	}
}
