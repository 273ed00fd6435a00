package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/imran-binhasan/fitstat-server/internal/logger"
	"github.com/imran-binhasan/fitstat-server/internal/metrics"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
)

type EmailJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, EmailJob{
		To:      to,
		Name:    name,
		Type:    "generic",
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", job.To, err)
		return err
	}

	logger.Infof("Email queued: %s to %s", job.Subject, job.To)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "success")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendPaymentConfirmation(ctx context.Context, to, name, className, packageName string, amountCents int64, currency string) error {
	subject := "Payment Confirmed - " + className
	body := fmt.Sprintf(`Hi %s,

Your payment has been received and your spot is booked!

Class: %s
Package: %s
Amount: %.2f %s

See you in class!

- FitStat Team`, name, className, packageName, float64(amountCents)/100, currency)

	return s.enqueue(ctx, EmailJob{
		To: to, Name: name, Type: "payment_confirmation",
		Subject: subject, Body: body, Created: time.Now(),
	})
}

func (s *Service) SendTrainerApproval(ctx context.Context, to, name string) error {
	subject := "Your Trainer Application Was Approved"
	body := fmt.Sprintf(`Hi %s,

Congratulations! Your trainer application has been approved.
You can now create classes and publish your availability slots.

- FitStat Team`, name)

	return s.enqueue(ctx, EmailJob{
		To: to, Name: name, Type: "trainer_decision",
		Subject: subject, Body: body, Created: time.Now(),
	})
}

func (s *Service) SendTrainerRejection(ctx context.Context, to, name, feedback string) error {
	subject := "Update on Your Trainer Application"
	body := fmt.Sprintf(`Hi %s,

Thank you for applying to become a trainer. Unfortunately your application
was not approved this time.

Feedback: %s

You are welcome to apply again.

- FitStat Team`, name, feedback)

	return s.enqueue(ctx, EmailJob{
		To: to, Name: name, Type: "trainer_decision",
		Subject: subject, Body: body, Created: time.Now(),
	})
}

func (s *Service) SendNewsletterWelcome(ctx context.Context, to, name string) error {
	subject := "Welcome to the FitStat Newsletter"
	body := fmt.Sprintf(`Hi %s,

Thanks for subscribing! You'll receive class updates, fitness tips
and platform news.

- FitStat Team`, name)

	return s.enqueue(ctx, EmailJob{
		To: to, Name: name, Type: "newsletter_welcome",
		Subject: subject, Body: body, Created: time.Now(),
	})
}
