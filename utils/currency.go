package utils

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valeriaulyamaeva/finance-ledger/internal/integrations/cbr"
)

// RateCache кеширует курсы валют, чтобы не ходить к ЦБ на каждый запрос
// конвертации. Протухший кеш перечитывается, при сбое используется
// последнее удачное значение.
type RateCache struct {
	client *cbr.Client
	log    *logrus.Logger

	mu        sync.Mutex
	rates     map[string]float64
	lastFetch time.Time
	timeout   time.Duration
}

func NewRateCache(client *cbr.Client, log *logrus.Logger) *RateCache {
	return &RateCache{
		client:  client,
		log:     log,
		timeout: 1 * time.Hour,
	}
}

// GetCurrencyRate возвращает курс валюты к рублю.
func (rc *RateCache) GetCurrencyRate(currencyCode string) (float64, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if time.Since(rc.lastFetch) >= rc.timeout {
		rates, err := rc.client.GetRates()
		if err != nil {
			rc.log.Warnf("Не удалось обновить курсы валют: %v", err)
			// Старый кеш лучше отказа.
			if rate, ok := rc.rates[currencyCode]; ok {
				return rate, nil
			}
			return 0, err
		}
		rc.rates = rates
		rc.lastFetch = time.Now()
	}

	if rate, ok := rc.rates[currencyCode]; ok {
		return rate, nil
	}
	return 0, errors.New("валюта не найдена")
}

// ConvertCurrency пересчитывает сумму из одной валюты в другую через рубль.
func (rc *RateCache) ConvertCurrency(amount float64, fromCurrency, toCurrency string) (float64, error) {
	fromRate, err := rc.GetCurrencyRate(fromCurrency)
	if err != nil {
		return 0, err
	}
	toRate, err := rc.GetCurrencyRate(toCurrency)
	if err != nil {
		return 0, err
	}
	if fromRate == 0 || toRate == 0 {
		return 0, errors.New("некорректные курсы валют")
	}

	return amount * (fromRate / toRate), nil
}
