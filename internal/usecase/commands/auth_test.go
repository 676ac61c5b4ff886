//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parking-api/internal/domain/user"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/pkg/jwt"
	"parking-api/internal/pkg/password"
	"parking-api/internal/usecase/commands"
	"parking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret-key-for-commands"

func newAuthCommands(m *txMocks) (commands.AuthCommands, *jwt.Service) {
	svc := jwt.NewService(testSecret, time.Hour)
	return commands.NewAuthCommands(m.uow, svc, m.clock), svc
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user account", func(t *testing.T) {
		m := newTxMocks(t)
		var stored *user.User
		m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlstore.DBTX, u *user.User) (int64, error) {
				stored = u
				return 5, nil
			})
		cmds, _ := newAuthCommands(m)

		id, err := cmds.Register(ctx, commands.RegisterRequest{Email: "new@example.com", Password: "password123", Name: "New Driver"})

		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
		assert.Equal(t, user.RoleUser, stored.Role())
		assert.Equal(t, "new@example.com", stored.Email().Value())
		assert.NotEqual(t, "password123", stored.PasswordHash())
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "password123"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		m := newTxMocks(t)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), repoDuplicate())
		cmds, _ := newAuthCommands(m)

		_, err := cmds.Register(ctx, commands.RegisterRequest{Email: "new@example.com", Password: "password123", Name: "New Driver"})

		require.ErrorIs(t, err, user.ErrEmailTaken)
	})

	testCases := []struct {
		name  string
		req   commands.RegisterRequest
		errIs error
	}{
		{name: "bad email", req: commands.RegisterRequest{Email: "nope", Password: "password123", Name: "A"}, errIs: user.ErrInvalidEmail},
		{name: "short password", req: commands.RegisterRequest{Email: "a@example.com", Password: "short", Name: "A"}, errIs: user.ErrPasswordTooWeak},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			cmds, _ := newAuthCommands(m)

			_, err := cmds.Register(ctx, tc.req)

			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("issues a token carrying id and role", func(t *testing.T) {
		m := newTxMocks(t)
		account := builder.NewUserBuilder().WithPasswordHash(hash).WithRole("admin").BuildStored()
		m.reads.EXPECT().UserByEmail(gomock.Any(), "test@example.com").Return(account, nil)
		m.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), int64(1), testNow).Return(nil)
		cmds, svc := newAuthCommands(m)

		result, err := cmds.Login(ctx, commands.LoginRequest{Email: "test@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.UserID)
		assert.Equal(t, user.RoleAdmin, result.Role)
		claims, err := svc.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, user.RoleAdmin.String(), claims.Role)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		m := newTxMocks(t)
		account := builder.NewUserBuilder().WithPasswordHash(hash).BuildStored()
		m.reads.EXPECT().UserByEmail(gomock.Any(), "test@example.com").Return(account, nil)
		m.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), int64(1), testNow).Return(assert.AnError)
		cmds, _ := newAuthCommands(m)

		result, err := cmds.Login(ctx, commands.LoginRequest{Email: "test@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, repoNotFound())
		cmds, _ := newAuthCommands(m)

		_, err := cmds.Login(ctx, commands.LoginRequest{Email: "ghost@example.com", Password: "password123"})

		require.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		m := newTxMocks(t)
		account := builder.NewUserBuilder().WithPasswordHash(hash).BuildStored()
		m.reads.EXPECT().UserByEmail(gomock.Any(), "test@example.com").Return(account, nil)
		cmds, _ := newAuthCommands(m)

		_, err := cmds.Login(ctx, commands.LoginRequest{Email: "test@example.com", Password: "wrong-password"})

		require.ErrorIs(t, err, user.ErrInvalidCredentials)
		kind, _ := errs.KindOf(err)
		assert.Equal(t, errs.KindUnauthenticated, kind)
	})

	t.Run("inactive account", func(t *testing.T) {
		m := newTxMocks(t)
		account := builder.NewUserBuilder().WithPasswordHash(hash).AsInactive().BuildStored()
		m.reads.EXPECT().UserByEmail(gomock.Any(), "test@example.com").Return(account, nil)
		cmds, _ := newAuthCommands(m)

		_, err := cmds.Login(ctx, commands.LoginRequest{Email: "test@example.com", Password: "password123"})

		require.ErrorIs(t, err, errs.ErrAccountInactive)
	})
}
