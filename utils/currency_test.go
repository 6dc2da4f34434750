package utils_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/valeriaulyamaeva/finance-ledger/internal/integrations/cbr"
	"github.com/valeriaulyamaeva/finance-ledger/utils"
)

const ratesXML = `<?xml version="1.0" encoding="UTF-8"?>
<ValCurs Date="02.11.2024" name="Foreign Currency Market">
	<Valute ID="R01235">
		<NumCode>840</NumCode>
		<CharCode>USD</CharCode>
		<Nominal>1</Nominal>
		<Name>Доллар США</Name>
		<Value>100,0000</Value>
	</Valute>
	<Valute ID="R01239">
		<NumCode>978</NumCode>
		<CharCode>EUR</CharCode>
		<Nominal>1</Nominal>
		<Name>Евро</Name>
		<Value>110,0000</Value>
	</Valute>
</ValCurs>`

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestConvertCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ratesXML))
	}))
	defer srv.Close()

	cache := utils.NewRateCache(cbr.NewClient(srv.URL, quietLogger()), quietLogger())

	// USD стоит 100 рублей, значит 5 USD — это 500 RUB.
	got, err := cache.ConvertCurrency(5, "USD", "RUB")
	if err != nil {
		t.Fatalf("ошибка конвертации: %v", err)
	}
	if math.Abs(got-500) > 1e-9 {
		t.Errorf("5 USD в RUB: получили %v, хотели 500", got)
	}

	got, err = cache.ConvertCurrency(110, "USD", "EUR")
	if err != nil {
		t.Fatalf("ошибка конвертации: %v", err)
	}
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("110 USD в EUR: получили %v, хотели 100", got)
	}
}

func TestConvertCurrencyUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ratesXML))
	}))
	defer srv.Close()

	cache := utils.NewRateCache(cbr.NewClient(srv.URL, quietLogger()), quietLogger())
	if _, err := cache.ConvertCurrency(10, "USD", "XYZ"); err == nil {
		t.Errorf("ожидали ошибку для неизвестной валюты")
	}
}

func TestRateCacheReusesRates(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(ratesXML))
	}))
	defer srv.Close()

	cache := utils.NewRateCache(cbr.NewClient(srv.URL, quietLogger()), quietLogger())
	for i := 0; i < 5; i++ {
		if _, err := cache.GetCurrencyRate("USD"); err != nil {
			t.Fatalf("ошибка получения курса: %v", err)
		}
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("курсы должны кешироваться, запросов к серверу: %d", n)
	}
}
