package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/hirewire-dev/hirewire/backend/internal/config"
	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

// mailTemplates maps a queued message type onto its template file and
// subject line.
var mailTemplates = map[string]struct {
	file    string
	subject string
}{
	"welcome":           {"./templates/welcome_email.html", "Welcome to HireWire"},
	"reset_password":    {"./templates/reset_password_otp_email.html", "HireWire - Reset your password"},
	"employer_verified": {"./templates/employer_verified_email.html", "HireWire - Your company is verified"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		return
	}

	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		return
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open rabbitmq channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue",
		true,  // durable
		false, // do not auto-delete when there is no consumer
		false, // not exclusive
		false, // wait for the broker to confirm the declaration
		nil,
	)
	if err != nil {
		logger.Error("failed to declare email queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // let the broker pick a consumer tag
		false, // manual acks
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to start consuming", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("failed to decode queued message", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				tmplInfo, ok := mailTemplates[mailMessage.Type]
				if !ok {
					logger.Error("unsupported mail type", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.From); err != nil {
					logger.Error("failed to set sender", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("failed to set recipient", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				tmpl, err := template.ParseFiles(tmplInfo.file)
				if err != nil {
					logger.Error("failed to parse mail template", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
					logger.Error("failed to render mail body", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				m.Subject(tmplInfo.subject)

				if err := client.DialAndSend(m); err != nil {
					logger.Error("failed to send mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue, the SMTP server may recover
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for messages... (press CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker stopped")
}
