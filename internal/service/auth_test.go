package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/internal/model"
	"github.com/librarium/backend/pkg/auth"

	mock_service "github.com/librarium/backend/internal/service/mocks"
)

func newTestService(t *testing.T) (*Service, *mock_service.MockRepository, *auth.TokenManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_service.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager(auth.Config{SigningKey: "test-key", TokenTTL: time.Hour})
	svc := NewService(repo, tokens, nil, zap.NewNop())
	return svc, repo, tokens
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_SignUp(t *testing.T) {
	svc, repo, tokens := newTestService(t)
	ctx := context.Background()

	var stored model.Customer
	repo.EXPECT().
		CreateCustomer(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, customer model.Customer) (model.Customer, error) {
			stored = customer
			customer.ID = 10
			return customer, nil
		})

	var tokenID string
	repo.EXPECT().
		SetTokenID(ctx, 10, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, tid string) error {
			tokenID = tid
			return nil
		})

	customer, resp, err := svc.SignUp(ctx, model.SignUpRequest{
		Username: "alice",
		Password: "secret123",
		City:     "Haifa",
	})
	require.NoError(t, err)
	require.Equal(t, 10, customer.ID)
	require.Equal(t, auth.RoleCustomer, stored.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))

	claims, err := tokens.Parse(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Profile.Username)
	require.Equal(t, tokenID, claims.ID)
}

func TestService_SignUp_BadBirthDate(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.SignUp(context.Background(), model.SignUpRequest{
		Username:  "alice",
		Password:  "secret123",
		BirthDate: "not-a-date",
	})
	require.ErrorIs(t, err, errs.ErrBadRequest)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("ok rotates session", func(t *testing.T) {
		svc, repo, tokens := newTestService(t)
		customer := model.Customer{
			ID:           3,
			Name:         "bob",
			PasswordHash: mustHash(t, "secret"),
			Role:         auth.RoleCustomer,
			Active:       true,
		}
		repo.EXPECT().GetCustomerByName(ctx, "bob").Return(customer, nil)

		var tokenID string
		repo.EXPECT().
			SetTokenID(ctx, 3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, tid string) error {
				tokenID = tid
				return nil
			})

		resp, err := svc.Login(ctx, model.LoginRequest{Username: "bob", Password: "secret"})
		require.NoError(t, err)
		require.Equal(t, auth.RoleCustomer, resp.Role)

		claims, err := tokens.Parse(resp.AccessToken)
		require.NoError(t, err)
		require.Equal(t, tokenID, claims.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetCustomerByName(ctx, "bob").Return(model.Customer{
			ID:           3,
			Name:         "bob",
			PasswordHash: mustHash(t, "secret"),
			Active:       true,
		}, nil)

		_, err := svc.Login(ctx, model.LoginRequest{Username: "bob", Password: "nope"})
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetCustomerByName(ctx, "bob").Return(model.Customer{
			ID:           3,
			Name:         "bob",
			PasswordHash: mustHash(t, "secret"),
			Active:       false,
		}, nil)

		_, err := svc.Login(ctx, model.LoginRequest{Username: "bob", Password: "secret"})
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetCustomerByName(ctx, "ghost").Return(model.Customer{}, errs.ErrNotFound)

		_, err := svc.Login(ctx, model.LoginRequest{Username: "ghost", Password: "secret"})
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestService_CheckSession(t *testing.T) {
	ctx := context.Background()
	tid := "f2b7b6a0-0000-0000-0000-000000000001"

	t.Run("live session", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetCustomerByID(ctx, 3).Return(model.Customer{ID: 3, TokenID: &tid, Active: true}, nil)

		err := svc.CheckSession(ctx, auth.Identity{CustomerID: 3, TokenID: tid})
		require.NoError(t, err)
	})

	t.Run("rotated session", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		newTid := "f2b7b6a0-0000-0000-0000-000000000002"
		repo.EXPECT().GetCustomerByID(ctx, 3).Return(model.Customer{ID: 3, TokenID: &newTid, Active: true}, nil)

		err := svc.CheckSession(ctx, auth.Identity{CustomerID: 3, TokenID: tid})
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetCustomerByID(ctx, 3).Return(model.Customer{ID: 3, TokenID: &tid, Active: false}, nil)

		err := svc.CheckSession(ctx, auth.Identity{CustomerID: 3, TokenID: tid})
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("unknown customer", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetCustomerByID(ctx, 3).Return(model.Customer{}, errs.ErrNotFound)

		err := svc.CheckSession(ctx, auth.Identity{CustomerID: 3, TokenID: tid})
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

// Re-login must retire the previous token: its jti no longer matches the
// stored one.
func TestService_ReloginRevokesPreviousToken(t *testing.T) {
	svc, repo, tokens := newTestService(t)
	ctx := context.Background()
	customer := model.Customer{
		ID:           5,
		Name:         "carol",
		PasswordHash: mustHash(t, "secret"),
		Role:         auth.RoleCustomer,
		Active:       true,
	}

	var lastTid string
	repo.EXPECT().GetCustomerByName(ctx, "carol").Return(customer, nil).Times(2)
	repo.EXPECT().
		SetTokenID(ctx, 5, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, tid string) error {
			lastTid = tid
			return nil
		}).Times(2)

	first, err := svc.Login(ctx, model.LoginRequest{Username: "carol", Password: "secret"})
	require.NoError(t, err)
	firstClaims, err := tokens.Parse(first.AccessToken)
	require.NoError(t, err)

	_, err = svc.Login(ctx, model.LoginRequest{Username: "carol", Password: "secret"})
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.ID, lastTid)

	repo.EXPECT().GetCustomerByID(ctx, 5).Return(model.Customer{ID: 5, TokenID: &lastTid, Active: true}, nil)
	err = svc.CheckSession(ctx, auth.Identity{CustomerID: 5, TokenID: firstClaims.ID})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestService_UpdateCustomer_EmptyPatch(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateCustomer(context.Background(), 1, model.UpdateCustomerRequest{})
	require.ErrorIs(t, err, errs.ErrBadRequest)
}
