package services

import (
	"log"
	"os"
	"strconv"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
	"gorm.io/gorm"
)

// EmailSender delivers an email. The SMTP implementation is swapped for a
// fake in tests.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// SMSSender delivers a text message.
type SMSSender interface {
	SendSMS(to, message string) error
}

// NotificationService dispatches email/SMS and logs every attempt, failed
// ones included.
type NotificationService struct {
	db    *gorm.DB
	email EmailSender
	sms   SMSSender
}

func NewNotificationService(db *gorm.DB, email EmailSender, sms SMSSender) *NotificationService {
	return &NotificationService{db: db, email: email, sms: sms}
}

func (s *NotificationService) record(n *models.Notification) error {
	n.Reference = uuid.NewString()
	return s.db.Create(n).Error
}

// SendEmail dispatches and logs an email notification. The log row exists
// even when delivery fails, with status "failed".
func (s *NotificationService) SendEmail(to, subject, message string) (*models.Notification, error) {
	if to == "" || subject == "" || message == "" {
		return nil, apperrors.Validation("Recipient, subject, and message are required")
	}

	n := &models.Notification{
		Type:      models.NotificationEmail,
		Recipient: to,
		Subject:   subject,
		Message:   message,
		Status:    models.NotificationSent,
	}

	sendErr := s.email.SendEmail(to, subject, message)
	if sendErr != nil {
		n.Status = models.NotificationFailed
	}
	if err := s.record(n); err != nil {
		return nil, err
	}
	if sendErr != nil {
		log.Printf("❌ Email to %s failed: %v", to, sendErr)
		return n, sendErr
	}
	return n, nil
}

// SendSMS dispatches and logs an SMS notification.
func (s *NotificationService) SendSMS(to, message string) (*models.Notification, error) {
	if to == "" || message == "" {
		return nil, apperrors.Validation("Recipient and message are required")
	}

	n := &models.Notification{
		Type:      models.NotificationSMS,
		Recipient: to,
		Message:   message,
		Status:    models.NotificationSent,
	}

	sendErr := s.sms.SendSMS(to, message)
	if sendErr != nil {
		n.Status = models.NotificationFailed
	}
	if err := s.record(n); err != nil {
		return nil, err
	}
	if sendErr != nil {
		log.Printf("❌ SMS to %s failed: %v", to, sendErr)
		return n, sendErr
	}
	return n, nil
}

// History lists dispatched notifications, newest first.
func (s *NotificationService) History() ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

// SMTPSender sends email over SMTP via go-mail, configured from env.
type SMTPSender struct {
	Host string
	Port int
	From string
	User string
	Pass string
}

// NewSMTPSenderFromEnv builds the production sender from SMTP_* variables.
func NewSMTPSenderFromEnv() *SMTPSender {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return &SMTPSender{
		Host: os.Getenv("SMTP_HOST"),
		Port: port,
		From: os.Getenv("SMTP_FROM"),
		User: os.Getenv("SMTP_USERNAME"),
		Pass: os.Getenv("SMTP_PASSWORD"),
	}
}

func (s *SMTPSender) SendEmail(to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(s.Host,
		mail.WithPort(s.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(s.User),
		mail.WithPassword(s.Pass),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}

// LogSMSSender stands in when no SMS gateway is configured: the message is
// logged and treated as sent.
type LogSMSSender struct{}

func (LogSMSSender) SendSMS(to, message string) error {
	log.Printf("📱 SMS to %s: %s", to, message)
	return nil
}
