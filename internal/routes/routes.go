package routes

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-ledger/internal/auth"
	"github.com/valeriaulyamaeva/finance-ledger/internal/handlers"
)

// SetupAdminRouter собирает роутер админской панели. Он монтируется в
// основной сервер под /admin и целиком закрыт проверкой allowlist.
func SetupAdminRouter(pool *pgxpool.Pool, allow auth.Allowlist, jwtSecret string) *mux.Router {
	r := mux.NewRouter()
	r.Use(auth.RequireAdmin(allow, jwtSecret))

	r.HandleFunc("/admin/stats/users", handlers.UserStatsHandler(pool)).Methods("GET")
	r.HandleFunc("/admin/stats/registrations", handlers.RegistrationsByMonthHandler(pool)).Methods("GET")
	r.HandleFunc("/admin/stats/volume", handlers.LedgerVolumeHandler(pool)).Methods("GET")

	return r
}
