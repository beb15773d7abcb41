package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	queueport "github.com/Ricky944902/classmate-web/internal/infrastructure/queue/port"
	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	"github.com/Ricky944902/classmate-web/internal/pkg/verification/application/task"
	verification "github.com/Ricky944902/classmate-web/internal/pkg/verification/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type fakeCodeRepo struct {
	codes  map[string]verification.VerificationCode // keyed by user id
	nextID int
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: map[string]verification.VerificationCode{}}
}

func (f *fakeCodeRepo) Replace(_ context.Context, code *verification.VerificationCode) (string, error) {
	f.nextID++
	stored := *code
	stored.ID = fmt.Sprintf("code-%d", f.nextID)
	f.codes[code.UserID] = stored
	return stored.ID, nil
}

func (f *fakeCodeRepo) Consume(_ context.Context, email, code string) (*verification.VerificationCode, error) {
	for userID, vc := range f.codes {
		if vc.Email == email && vc.Code == code {
			delete(f.codes, userID)
			return &vc, nil
		}
	}
	return nil, apperrors.NotFound("verification code not found")
}

type fakeUserStore struct {
	users map[string]identity.User
}

func newFakeUserStore(users ...identity.User) *fakeUserStore {
	f := &fakeUserStore{users: map[string]identity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, _ *identity.User) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*identity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return &u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserStore) FindByUsername(_ context.Context, _ string) (*identity.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserStore) Search(_ context.Context, _ string) ([]identity.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserStore) List(_ context.Context) ([]identity.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserStore) SetRole(_ context.Context, _ string, _ bool) error {
	return errors.New("not implemented")
}

func (f *fakeUserStore) SetVerified(_ context.Context, id string, verified bool) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.NotFound("user not found")
	}
	u.IsVerified = verified
	f.users[id] = u
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

type fakeQueueClient struct {
	tasks      []queueport.Task
	opts       []queueport.EnqueueOption
	enqueueErr error
}

func (f *fakeQueueClient) Enqueue(_ context.Context, t queueport.Task, opts ...queueport.EnqueueOption) (string, error) {
	if f.enqueueErr != nil {
		return "", f.enqueueErr
	}
	f.tasks = append(f.tasks, t)
	f.opts = append(f.opts, opts...)
	return fmt.Sprintf("task-%d", len(f.tasks)), nil
}

func (f *fakeQueueClient) Close() error { return nil }

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID string, isAdmin bool) (string, error) {
	return fmt.Sprintf("token:%s:%t", userID, isAdmin), nil
}

var testStart = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func issueFixture() (*IssueCodeUseCase, *fakeCodeRepo, *fakeUserStore, *fakeQueueClient) {
	codes := newFakeCodeRepo()
	users := newFakeUserStore(identity.User{ID: "user-1", Username: "alice", Email: "alice@example.com"})
	queue := &fakeQueueClient{}

	uc := NewIssueCodeUseCase(codes, users, queue)
	uc.Now = func() time.Time { return testStart }
	seq := 0
	uc.GenerateCode = func() (string, error) {
		seq++
		return fmt.Sprintf("%06d", 100000+seq), nil
	}
	return uc, codes, users, queue
}

func TestIssueCode(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the code and queues the email", func(t *testing.T) {
		uc, codes, _, queue := issueFixture()

		require.NoError(t, uc.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))

		stored := codes.codes["user-1"]
		assert.Equal(t, "100001", stored.Code)
		assert.Equal(t, testStart.Add(verification.CodeTTL), stored.ExpiresAt)

		require.Len(t, queue.tasks, 1)
		assert.Equal(t, task.TypeSendCode, queue.tasks[0].Type)
		var p task.SendCodePayload
		require.NoError(t, json.Unmarshal(queue.tasks[0].Payload, &p))
		assert.Equal(t, "alice@example.com", p.Email)
		assert.Equal(t, "100001", p.Code)
		require.Len(t, queue.opts, 1)
		assert.Equal(t, task.QueueNotify, queue.opts[0].Queue)
	})

	t.Run("a new code replaces the previous one", func(t *testing.T) {
		uc, codes, _, _ := issueFixture()

		require.NoError(t, uc.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))
		first := codes.codes["user-1"].Code
		require.NoError(t, uc.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))

		assert.Len(t, codes.codes, 1)
		assert.NotEqual(t, first, codes.codes["user-1"].Code)

		_, err := codes.Consume(ctx, "alice@example.com", first)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _, _ := issueFixture()
		err := uc.Execute(ctx, IssueCodeInput{Email: "ghost@example.com"})
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("enqueue failure does not undo issuance", func(t *testing.T) {
		uc, codes, _, queue := issueFixture()
		queue.enqueueErr = errors.New("redis down")

		require.NoError(t, uc.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))
		assert.NotEmpty(t, codes.codes["user-1"].Code)
	})
}

func TestVerifyCode(t *testing.T) {
	ctx := context.Background()

	fixture := func() (*IssueCodeUseCase, *VerifyCodeUseCase, *fakeCodeRepo, *fakeUserStore) {
		issue, codes, users, _ := issueFixture()
		verify := NewVerifyCodeUseCase(codes, users, fakeIssuer{})
		verify.Now = func() time.Time { return testStart }
		return issue, verify, codes, users
	}

	t.Run("valid code returns a token and marks the user verified", func(t *testing.T) {
		issue, verify, codes, users := fixture()
		require.NoError(t, issue.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))
		code := codes.codes["user-1"].Code

		out, err := verify.Execute(ctx, VerifyCodeInput{Email: "alice@example.com", Code: code})
		require.NoError(t, err)
		assert.Equal(t, "token:user-1:false", out.Token)
		assert.Equal(t, "alice", out.User.Username)
		assert.True(t, users.users["user-1"].IsVerified)
	})

	t.Run("a code cannot be redeemed twice", func(t *testing.T) {
		issue, verify, codes, _ := fixture()
		require.NoError(t, issue.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))
		code := codes.codes["user-1"].Code

		_, err := verify.Execute(ctx, VerifyCodeInput{Email: "alice@example.com", Code: code})
		require.NoError(t, err)

		_, err = verify.Execute(ctx, VerifyCodeInput{Email: "alice@example.com", Code: code})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("expired code is consumed and rejected", func(t *testing.T) {
		issue, verify, codes, users := fixture()
		require.NoError(t, issue.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))
		code := codes.codes["user-1"].Code

		verify.Now = func() time.Time { return testStart.Add(verification.CodeTTL + time.Second) }

		_, err := verify.Execute(ctx, VerifyCodeInput{Email: "alice@example.com", Code: code})
		assert.Equal(t, apperrors.CodeExpired, apperrors.CodeOf(err))
		assert.False(t, users.users["user-1"].IsVerified)

		// The row is gone, so a retry with the same code is just invalid.
		_, err = verify.Execute(ctx, VerifyCodeInput{Email: "alice@example.com", Code: code})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("a code expires at the deadline itself", func(t *testing.T) {
		issue, verify, codes, _ := fixture()
		require.NoError(t, issue.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))
		code := codes.codes["user-1"].Code

		verify.Now = func() time.Time { return testStart.Add(verification.CodeTTL) }

		_, err := verify.Execute(ctx, VerifyCodeInput{Email: "alice@example.com", Code: code})
		assert.Equal(t, apperrors.CodeExpired, apperrors.CodeOf(err))
	})

	t.Run("wrong code", func(t *testing.T) {
		issue, verify, _, _ := fixture()
		require.NoError(t, issue.Execute(ctx, IssueCodeInput{Email: "alice@example.com"}))

		_, err := verify.Execute(ctx, VerifyCodeInput{Email: "alice@example.com", Code: "000000"})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}
