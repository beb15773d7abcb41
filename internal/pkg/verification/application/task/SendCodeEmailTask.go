package task

import (
	"context"
	"encoding/json"
	"log"

	"github.com/pkg/errors"

	queueport "github.com/Ricky944902/classmate-web/internal/infrastructure/queue/port"
)

// TypeSendCode is the task type for verification code emails.
const TypeSendCode = "verification:send_code"

// QueueNotify is the queue the email tasks land on.
const QueueNotify = "notify"

// SendCodePayload is the JSON payload of a TypeSendCode task.
type SendCodePayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// CodeSender delivers a one-time code to a recipient. Satisfied by the SMTP
// mailer.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// NewSendCodeEmailHandler returns the queue handler that mails the code. A
// send failure is returned so the queue retries; payload decode errors are
// permanent and only logged.
func NewSendCodeEmailHandler(sender CodeSender) queueport.Handler {
	return func(ctx context.Context, t queueport.Task) error {
		var p SendCodePayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			log.Printf("verification: drop malformed %s payload: %v", t.Type, err)
			return nil
		}
		if p.Email == "" || p.Code == "" {
			log.Printf("verification: drop incomplete %s payload", t.Type)
			return nil
		}
		if err := sender.SendVerificationCode(ctx, p.Email, p.Code); err != nil {
			return errors.Wrap(err, "send verification code email")
		}
		return nil
	}
}
