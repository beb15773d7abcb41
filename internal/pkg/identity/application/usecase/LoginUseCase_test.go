package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/Ricky944902/classmate-web/internal/pkg/identity/domain"
	"github.com/Ricky944902/classmate-web/pkg/apperrors"
)

type fakeUserRepo struct {
	users  map[string]identity.User
	nextID int

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]identity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *identity.User) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return "", apperrors.AlreadyExists("username or email already in use")
		}
	}
	f.nextID++
	id := fmt.Sprintf("user-%d", f.nextID)
	stored := *u
	stored.ID = id
	f.users[id] = stored
	return id, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*identity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*identity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

func (f *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) Search(_ context.Context, query string) ([]identity.User, error) {
	q := strings.ToLower(query)
	var out []identity.User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]identity.User, error) {
	var out []identity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id string, isAdmin bool) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.NotFound("user not found")
	}
	u.IsAdmin = isAdmin
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) SetVerified(_ context.Context, id string, verified bool) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.NotFound("user not found")
	}
	u.IsVerified = verified
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.NotFound("user not found")
	}
	delete(f.users, id)
	return nil
}

type fakeTokenIssuer struct {
	err error
}

func (f fakeTokenIssuer) Issue(userID string, isAdmin bool) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("token:%s:%t", userID, isAdmin), nil
}

func register(t *testing.T, repo *fakeUserRepo, username, email, password string) *identity.Profile {
	t.Helper()
	p, err := NewRegisterUserUseCase(repo).Execute(context.Background(), RegisterUserInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return p
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an account with a hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		p := register(t, repo, "alice", "alice@example.com", "s3cret!")

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "alice", p.Username)
		assert.Equal(t, "alice@example.com", p.Email)
		assert.False(t, p.IsAdmin)

		stored := repo.users[p.ID]
		assert.NotEmpty(t, stored.PasswordHash)
		assert.NotContains(t, stored.PasswordHash, "s3cret!")
	})

	t.Run("email is normalized to lower case", func(t *testing.T) {
		repo := newFakeUserRepo()
		p := register(t, repo, "alice", "Alice@Example.COM", "s3cret!")
		assert.Equal(t, "alice@example.com", p.Email)
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		repo := newFakeUserRepo()
		register(t, repo, "alice", "alice@example.com", "s3cret!")

		uc := NewRegisterUserUseCase(repo)
		_, err := uc.Execute(ctx, RegisterUserInput{Username: "alice", Email: "other@example.com", Password: "s3cret!"})
		assert.Equal(t, apperrors.CodeAlreadyExists, apperrors.CodeOf(err))

		_, err = uc.Execute(ctx, RegisterUserInput{Username: "alice2", Email: "alice@example.com", Password: "s3cret!"})
		assert.Equal(t, apperrors.CodeAlreadyExists, apperrors.CodeOf(err))
	})

	t.Run("short password", func(t *testing.T) {
		repo := newFakeUserRepo()
		_, err := NewRegisterUserUseCase(repo).Execute(ctx, RegisterUserInput{
			Username: "alice", Email: "alice@example.com", Password: "12345",
		})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := newFakeUserRepo()
		_, err := NewRegisterUserUseCase(repo).Execute(ctx, RegisterUserInput{Username: "alice"})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a token and profile", func(t *testing.T) {
		repo := newFakeUserRepo()
		p := register(t, repo, "alice", "alice@example.com", "s3cret!")

		out, err := NewLoginUseCase(repo, fakeTokenIssuer{}).Execute(ctx, LoginInput{
			Email: "alice@example.com", Password: "s3cret!",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("token:%s:false", p.ID), out.Token)
		assert.Equal(t, "alice", out.User.Username)
	})

	t.Run("username works as the identifier", func(t *testing.T) {
		repo := newFakeUserRepo()
		p := register(t, repo, "alice", "alice@example.com", "s3cret!")

		out, err := NewLoginUseCase(repo, fakeTokenIssuer{}).Execute(ctx, LoginInput{
			Username: "alice", Password: "s3cret!",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("token:%s:false", p.ID), out.Token)
	})

	t.Run("missing identifier is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		register(t, repo, "alice", "alice@example.com", "s3cret!")

		_, err := NewLoginUseCase(repo, fakeTokenIssuer{}).Execute(ctx, LoginInput{Password: "s3cret!"})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("wrong password and unknown identifier return the same error", func(t *testing.T) {
		repo := newFakeUserRepo()
		register(t, repo, "alice", "alice@example.com", "s3cret!")
		uc := NewLoginUseCase(repo, fakeTokenIssuer{})

		_, errWrongPw := uc.Execute(ctx, LoginInput{Email: "alice@example.com", Password: "nope!!"})
		_, errNoUser := uc.Execute(ctx, LoginInput{Email: "ghost@example.com", Password: "s3cret!"})

		assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(errWrongPw))
		assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(errNoUser))
		assert.Equal(t, errWrongPw.Error(), errNoUser.Error())
	})

	t.Run("token issuer failure", func(t *testing.T) {
		repo := newFakeUserRepo()
		register(t, repo, "alice", "alice@example.com", "s3cret!")

		_, err := NewLoginUseCase(repo, fakeTokenIssuer{err: errors.New("no key")}).Execute(ctx, LoginInput{
			Email: "alice@example.com", Password: "s3cret!",
		})
		assert.Equal(t, apperrors.CodeUnavailable, apperrors.CodeOf(err))
	})
}

func TestSearchUsers(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	register(t, repo, "alice", "alice@example.com", "s3cret!")
	register(t, repo, "alicia", "alicia@example.com", "s3cret!")
	register(t, repo, "bob", "bob@example.com", "s3cret!")

	t.Run("matches username substring", func(t *testing.T) {
		out, err := NewSearchUsersUseCase(repo).Execute(ctx, "alic")
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "alice", out[0].Username)
		assert.Equal(t, "alicia", out[1].Username)
	})

	t.Run("matches email substring", func(t *testing.T) {
		out, err := NewSearchUsersUseCase(repo).Execute(ctx, "bob@")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "bob", out[0].Username)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		_, err := NewSearchUsersUseCase(repo).Execute(ctx, "   ")
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})
}

func TestAdminUserManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("set role grants and revokes admin", func(t *testing.T) {
		repo := newFakeUserRepo()
		p := register(t, repo, "alice", "alice@example.com", "s3cret!")
		uc := NewSetUserRoleUseCase(repo)

		require.NoError(t, uc.Execute(ctx, SetUserRoleInput{ActorID: "admin-1", TargetID: p.ID, IsAdmin: true}))
		assert.True(t, repo.users[p.ID].IsAdmin)

		require.NoError(t, uc.Execute(ctx, SetUserRoleInput{ActorID: "admin-1", TargetID: p.ID, IsAdmin: false}))
		assert.False(t, repo.users[p.ID].IsAdmin)
	})

	t.Run("admin cannot revoke own role", func(t *testing.T) {
		repo := newFakeUserRepo()
		err := NewSetUserRoleUseCase(repo).Execute(ctx, SetUserRoleInput{ActorID: "admin-1", TargetID: "admin-1", IsAdmin: false})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("delete removes the account", func(t *testing.T) {
		repo := newFakeUserRepo()
		p := register(t, repo, "alice", "alice@example.com", "s3cret!")

		require.NoError(t, NewDeleteUserUseCase(repo).Execute(ctx, DeleteUserInput{ActorID: "admin-1", TargetID: p.ID}))
		_, err := repo.FindByID(ctx, p.ID)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("admin cannot delete self", func(t *testing.T) {
		repo := newFakeUserRepo()
		err := NewDeleteUserUseCase(repo).Execute(ctx, DeleteUserInput{ActorID: "admin-1", TargetID: "admin-1"})
		assert.Equal(t, apperrors.CodeInvalidArgument, apperrors.CodeOf(err))
	})

	t.Run("delete unknown user", func(t *testing.T) {
		repo := newFakeUserRepo()
		err := NewDeleteUserUseCase(repo).Execute(ctx, DeleteUserInput{ActorID: "admin-1", TargetID: "ghost"})
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("list returns every account ordered by creation", func(t *testing.T) {
		repo := newFakeUserRepo()
		a := register(t, repo, "alice", "alice@example.com", "s3cret!")
		// Distinct timestamps keep the ordering assertion meaningful.
		u := repo.users[a.ID]
		u.CreatedAt = u.CreatedAt.Add(-time.Minute)
		repo.users[a.ID] = u
		register(t, repo, "bob", "bob@example.com", "s3cret!")

		out, err := NewListUsersUseCase(repo).Execute(ctx)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "alice", out[0].Username)
		assert.Equal(t, "bob", out[1].Username)
	})
}
