package cbr

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// Client запрашивает ежедневные курсы валют ЦБ (XML_daily).
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func NewClient(url string, log *logrus.Logger) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// GetRates возвращает курсы валют к рублю: RUB за единицу валюты.
// Рубль добавляется в карту с курсом 1.
func (c *Client) GetRates() (map[string]float64, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса курсов: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("неожиданный статус ответа: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %v", err)
	}

	c.log.Debugf("Ответ XML от ЦБ: %d байт", len(body))

	return c.parseRates(body)
}

func (c *Client) parseRates(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("ошибка разбора XML: %v", err)
	}

	valutes := doc.FindElements("//ValCurs/Valute")
	if len(valutes) == 0 {
		return nil, fmt.Errorf("в XML не найдены курсы валют")
	}

	rates := map[string]float64{"RUB": 1}
	for _, valute := range valutes {
		codeEl := valute.FindElement("./CharCode")
		valueEl := valute.FindElement("./Value")
		nominalEl := valute.FindElement("./Nominal")
		if codeEl == nil || valueEl == nil || nominalEl == nil {
			continue
		}

		// В ответе ЦБ десятичный разделитель — запятая.
		value, err := strconv.ParseFloat(strings.Replace(valueEl.Text(), ",", ".", 1), 64)
		if err != nil {
			c.log.Warnf("Не удалось разобрать курс %s: %v", codeEl.Text(), err)
			continue
		}
		nominal, err := strconv.ParseFloat(nominalEl.Text(), 64)
		if err != nil || nominal == 0 {
			continue
		}

		rates[codeEl.Text()] = value / nominal
	}

	c.log.Infof("Получено курсов валют: %d", len(rates))
	return rates, nil
}
