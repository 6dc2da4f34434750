package models_test

import (
	"testing"

	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func TestValidDebtStatus(t *testing.T) {
	for _, status := range []string{
		models.DebtStatusAtiva,
		models.DebtStatusPendente,
		models.DebtStatusVencida,
		models.DebtStatusPaga,
		models.DebtStatusQuitada,
	} {
		if !models.ValidDebtStatus(status) {
			t.Errorf("статус %q должен быть допустимым", status)
		}
	}

	if models.ValidDebtStatus("CANCELADA") {
		t.Errorf("неизвестный статус прошёл проверку")
	}
	if models.ValidDebtStatus("ativa") {
		t.Errorf("статусы чувствительны к регистру")
	}
}

func TestDebtTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{models.DebtStatusPendente, models.DebtStatusAtiva, true},
		{models.DebtStatusPendente, models.DebtStatusVencida, true},
		{models.DebtStatusAtiva, models.DebtStatusVencida, true},
		{models.DebtStatusAtiva, models.DebtStatusPaga, true},
		{models.DebtStatusVencida, models.DebtStatusPaga, true},
		{models.DebtStatusVencida, models.DebtStatusQuitada, true},
		{models.DebtStatusVencida, models.DebtStatusAtiva, false},
		{models.DebtStatusPaga, models.DebtStatusAtiva, false},
		{models.DebtStatusPaga, models.DebtStatusQuitada, false},
		{models.DebtStatusQuitada, models.DebtStatusPaga, false},
	}

	for _, c := range cases {
		if got := models.CanTransition(c.from, c.to); got != c.allowed {
			t.Errorf("переход %s -> %s: получили %v, хотели %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestDebtTransition(t *testing.T) {
	debt := &models.Debt{Status: models.DebtStatusAtiva}
	if err := debt.Transition(models.DebtStatusPaga); err != nil {
		t.Fatalf("разрешённый переход вернул ошибку: %v", err)
	}
	if debt.Status != models.DebtStatusPaga {
		t.Errorf("статус после перехода: %q", debt.Status)
	}

	// Оплаченный долг — терминальное состояние.
	if err := debt.Transition(models.DebtStatusAtiva); err == nil {
		t.Errorf("переход из PAGA обратно в ATIVA не должен быть разрешён")
	}
	if debt.Status != models.DebtStatusPaga {
		t.Errorf("статус не должен меняться при запрещённом переходе, получили %q", debt.Status)
	}

	if err := debt.Transition("CANCELADA"); err == nil {
		t.Errorf("переход в неизвестный статус не должен быть разрешён")
	}
}
