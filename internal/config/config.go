package config

import (
	"fmt"
	"os"
	"strings"
)

// Config собирает конфигурацию приложения из переменных окружения.
type Config struct {
	Port         string
	DBConn       string
	LogLevel     string
	JWTSecret    string
	AdminEmails  []string
	AvatarDir    string
	CBRURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig загружает конфигурацию из окружения.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBConn:    getEnv("DB_CONN", BuildDBConn()),
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		AvatarDir: getEnv("AVATAR_DIR", "uploads/avatars"),
		CBRURL:    getEnv("CBR_URL", "https://www.cbr.ru/scripts/XML_daily.asp"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "noreply@finance-ledger.local"),
	}

	// Список администраторов приходит из ADMIN_EMAILS через запятую.
	for _, email := range strings.Split(getEnv("ADMIN_EMAILS", ""), ",") {
		email = strings.TrimSpace(email)
		if email != "" {
			cfg.AdminEmails = append(cfg.AdminEmails, email)
		}
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// BuildDBConn собирает строку подключения из переменных DB_*. Без
// DB_HOST возвращает пустую строку.
func BuildDBConn() string {
	host := getEnv("DB_HOST", "")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		host,
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "finance_db"))
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
