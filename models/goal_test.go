package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-ledger/models"
)

func TestContributionsTotal(t *testing.T) {
	contributions := []models.Transaction{
		{Amount: decimal.NewFromFloat(100.50)},
		{Amount: decimal.NewFromFloat(49.50)},
		{Amount: decimal.NewFromInt(250)},
	}

	total := models.ContributionsTotal(contributions)
	if !total.Equal(decimal.NewFromInt(400)) {
		t.Errorf("итог взносов: получили %s, хотели 400", total)
	}
}

func TestContributionsTotalEmpty(t *testing.T) {
	total := models.ContributionsTotal(nil)
	if !total.Equal(decimal.Zero) {
		t.Errorf("итог без взносов должен быть нулевым, получили %s", total)
	}
}
