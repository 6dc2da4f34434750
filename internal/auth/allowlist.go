package auth

import "strings"

// Allowlist — множество привилегированных email. Наполняется из
// конфигурации, в коде список не зашит.
type Allowlist map[string]struct{}

// NewAllowlist нормализует адреса (регистр, пробелы) и строит множество.
func NewAllowlist(emails []string) Allowlist {
	allow := make(Allowlist, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allow[email] = struct{}{}
		}
	}
	return allow
}

// IsPrivileged проверяет членство без побочных эффектов.
func (a Allowlist) IsPrivileged(email string) bool {
	_, ok := a[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
