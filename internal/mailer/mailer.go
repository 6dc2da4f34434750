package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/valeriaulyamaeva/finance-ledger/internal/config"
)

// Sender отправляет письма-напоминания по SMTP.
type Sender struct {
	cfg *config.Config
	log *logrus.Logger
}

func NewSender(cfg *config.Config, log *logrus.Logger) *Sender {
	return &Sender{
		cfg: cfg,
		log: log,
	}
}

// SendPaymentReminder отправляет напоминание о предстоящем или просроченном
// платеже.
func (s *Sender) SendPaymentReminder(to, username, description string, amount decimal.Decimal, dueDate time.Time, overdue bool) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	if overdue {
		e.Subject = "Просроченный платёж"
	} else {
		e.Subject = "Напоминание о платеже"
	}

	body := fmt.Sprintf("Здравствуйте, %s!\n\n", username)
	if overdue {
		body += fmt.Sprintf(
			"Срок платежа %s на сумму %s истёк %s.\n"+
				"Пожалуйста, оплатите его как можно скорее.\n",
			description, amount.StringFixed(2), dueDate.Format("2006-01-02"),
		)
	} else {
		body += fmt.Sprintf(
			"Напоминаем: платёж %s на сумму %s нужно внести до %s.\n",
			description, amount.StringFixed(2), dueDate.Format("2006-01-02"),
		)
	}
	body += "\nВаш финансовый помощник"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.log.Errorf("Не удалось отправить письмо %s: %v", to, err)
		return fmt.Errorf("ошибка отправки письма: %w", err)
	}

	s.log.Infof("Письмо отправлено %s: %s", to, e.Subject)
	return nil
}
