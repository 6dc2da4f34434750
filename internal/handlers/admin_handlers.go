package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/internal/database"
)

// Админские обработчики написаны на net/http: админский роутер собирается
// на gorilla/mux отдельно от основного API.

func UserStatsHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.GetUserStats(pool)
		if err != nil {
			log.Printf("Ошибка получения статистики пользователей: %v", err)
			http.Error(w, "Ошибка получения статистики пользователей", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

func RegistrationsByMonthHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registrations, err := database.GetRegistrationsByMonth(pool)
		if err != nil {
			log.Printf("Ошибка получения регистраций по месяцам: %v", err)
			http.Error(w, "Ошибка получения регистраций по месяцам", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(registrations)
	}
}

func LedgerVolumeHandler(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		volume, err := database.GetLedgerVolume(pool)
		if err != nil {
			log.Printf("Ошибка получения оборота леджера: %v", err)
			http.Error(w, "Ошибка получения оборота леджера", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(volume)
	}
}
