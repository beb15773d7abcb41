package usecase

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"log"
	"math/big"
	"strconv"
	"time"

	queueport "github.com/Ricky944902/classmate-web/internal/infrastructure/queue/port"
	identityrepo "github.com/Ricky944902/classmate-web/internal/pkg/identity/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/internal/pkg/verification/application/task"
	verification "github.com/Ricky944902/classmate-web/internal/pkg/verification/domain"
	repository "github.com/Ricky944902/classmate-web/internal/pkg/verification/persistence/repository/port"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type IssueCodeInput struct {
	Email string
}

// IssueCodeUseCase creates a fresh one-time code for the user behind the
// email, replacing any previous code, and queues the email that delivers it.
// A queue failure is logged but does not undo issuance; the user can request
// another code.
type IssueCodeUseCase struct {
	Codes repository.CodeRepository
	Users identityrepo.UserRepository
	Queue queueport.Client

	// Now and GenerateCode are injectable for tests.
	Now          func() time.Time
	GenerateCode func() (string, error)
}

func NewIssueCodeUseCase(codes repository.CodeRepository, users identityrepo.UserRepository, queue queueport.Client) *IssueCodeUseCase {
	return &IssueCodeUseCase{
		Codes:        codes,
		Users:        users,
		Queue:        queue,
		Now:          time.Now,
		GenerateCode: randomCode,
	}
}

func (uc *IssueCodeUseCase) Execute(ctx context.Context, in IssueCodeInput) error {
	if in.Email == "" {
		return apperrors.InvalidArg("email is required")
	}

	u, err := uc.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return err
		}
		return apperrors.Unavailable("load user", err)
	}

	code, err := uc.GenerateCode()
	if err != nil {
		return apperrors.Unavailable("generate verification code", err)
	}

	now := uc.Now().UTC()
	vc := &verification.VerificationCode{
		UserID:    u.ID,
		Email:     u.Email,
		Code:      code,
		ExpiresAt: now.Add(verification.CodeTTL),
		CreatedAt: now,
	}
	if _, err := uc.Codes.Replace(ctx, vc); err != nil {
		return apperrors.Unavailable("store verification code", err)
	}

	payload, err := json.Marshal(task.SendCodePayload{Email: u.Email, Code: code})
	if err != nil {
		return apperrors.Unavailable("encode email task", err)
	}
	_, err = uc.Queue.Enqueue(ctx, queueport.Task{Type: task.TypeSendCode, Payload: payload},
		queueport.EnqueueOption{Queue: task.QueueNotify, MaxRetry: 3})
	if err != nil {
		// The code is already stored and redeemable; the user can always
		// request a fresh one if the mail never arrives.
		log.Printf("verification: enqueue %s for %s failed: %v", task.TypeSendCode, u.Email, err)
	}
	return nil
}

// randomCode draws a uniform 6-digit code from crypto/rand.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
