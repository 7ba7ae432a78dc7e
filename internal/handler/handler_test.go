package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/internal/handler"
	"github.com/librarium/backend/internal/model"
	"github.com/librarium/backend/internal/service"
	"github.com/librarium/backend/pkg/auth"
	"github.com/librarium/backend/pkg/validate"

	mock_handler "github.com/librarium/backend/internal/handler/mocks"
)

type testEnv struct {
	authSvc    *mock_handler.MockAuthService
	catalogSvc *mock_handler.MockCatalogService
	loanSvc    *mock_handler.MockLoanService
	tokens     *auth.TokenManager
	handler    *handler.Handler
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)

	env := testEnv{
		authSvc:    mock_handler.NewMockAuthService(c),
		catalogSvc: mock_handler.NewMockCatalogService(c),
		loanSvc:    mock_handler.NewMockLoanService(c),
		tokens:     auth.NewTokenManager(auth.Config{SigningKey: "test-key", TokenTTL: time.Hour}),
	}
	env.handler = handler.New(env.authSvc, env.catalogSvc, env.loanSvc, env.tokens, zap.NewNop())
	return env
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

func TestHandler_SignUp(t *testing.T) {
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"username":"alice","password":"secret123","city":"Haifa"}`,
			mockBehavior: func(r *mock_handler.MockAuthService) {
				r.EXPECT().
					SignUp(gomock.Any(), model.SignUpRequest{Username: "alice", Password: "secret123", City: "Haifa"}).
					Return(
						model.Customer{ID: 1, Name: "alice", City: "Haifa", Role: auth.RoleCustomer, Active: true},
						model.AuthResponse{AccessToken: "jwt", ExpiresIn: 100, Role: auth.RoleCustomer},
						nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"customer":{"id":1,"name":"alice","city":"Haifa","age":null,"phoneNumber":"","birthDate":null,"role":"customer","active":true},"accessToken":"jwt","expiresIn":100,"role":"customer"}`,
			},
		},
		{
			name: "err. duplicate username",
			body: `{"username":"alice","password":"secret123"}`,
			mockBehavior: func(r *mock_handler.MockAuthService) {
				r.EXPECT().
					SignUp(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, model.AuthResponse{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already exists"}`,
			},
		},
		{
			name:         "err. missing password",
			body:         `{"username":"alice"}`,
			mockBehavior: func(r *mock_handler.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.mockBehavior(env.authSvc)

			e := newEcho()
			e.POST("/auth/signup", env.handler.SignUp)

			r := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.JSONEq(t, tt.response.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"username":"bob","password":"secret"}`,
			mockBehavior: func(r *mock_handler.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), model.LoginRequest{Username: "bob", Password: "secret"}).
					Return(model.AuthResponse{AccessToken: "jwt", ExpiresIn: 100, Role: auth.RoleLibrarian}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"accessToken":"jwt","expiresIn":100,"role":"librarian"}`,
			},
		},
		{
			name: "err. bad credentials",
			body: `{"username":"bob","password":"nope"}`,
			mockBehavior: func(r *mock_handler.MockAuthService) {
				r.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(model.AuthResponse{}, errs.ErrUnauthorized)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"unauthorized"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.mockBehavior(env.authSvc)

			e := newEcho()
			e.POST("/auth/login", env.handler.Login)

			r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.JSONEq(t, tt.response.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_IssueLoan(t *testing.T) {
	loanDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *mock_handler.MockLoanService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"custId":1,"bookId":2}`,
			mockBehavior: func(r *mock_handler.MockLoanService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), model.CreateLoanRequest{CustID: 1, BookID: 2}).
					Return(model.Loan{ID: 9, CustID: 1, BookID: 2, LoanDate: loanDate, IsLoaned: true, Active: true}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":9,"custId":1,"bookId":2,"loanDate":"2024-03-01T12:00:00Z","returnDate":null,"isLoaned":true,"active":true}`,
			},
		},
		{
			name: "err. book already loaned",
			body: `{"custId":1,"bookId":2}`,
			mockBehavior: func(r *mock_handler.MockLoanService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errs.ErrBookLoaned)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book already has an active loan"}`,
			},
		},
		{
			name: "err. inactive book",
			body: `{"custId":1,"bookId":2}`,
			mockBehavior: func(r *mock_handler.MockLoanService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errs.ErrInactiveBook)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is inactive"}`,
			},
		},
		{
			name:         "err. missing bookId",
			body:         `{"custId":1}`,
			mockBehavior: func(r *mock_handler.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tt.mockBehavior(env.loanSvc)

			e := newEcho()
			e.POST("/auth/loans", env.handler.IssueLoan)

			r := httptest.NewRequest(http.MethodPost, "/auth/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.JSONEq(t, tt.response.expectedBody, w.Body.String())
			}
		})
	}
}

func TestHandler_ReturnLoan(t *testing.T) {
	returnDate := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t)
	env.loanSvc.EXPECT().
		ReturnLoan(gomock.Any(), 9).
		Return(model.Loan{ID: 9, CustID: 1, BookID: 2, LoanDate: returnDate.AddDate(0, 0, -3), ReturnDate: &returnDate, IsLoaned: false, Active: false}, nil)

	e := newEcho()
	e.POST("/auth/loans/:id/return", env.handler.ReturnLoan)

	r := httptest.NewRequest(http.MethodPost, "/auth/loans/9/return", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"id":9,"custId":1,"bookId":2,"loanDate":"2024-03-01T09:00:00Z","returnDate":"2024-03-04T09:00:00Z","isLoaned":false,"active":false}`,
		w.Body.String())
}

func TestHandler_ListLate(t *testing.T) {
	now := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		env := newTestEnv(t)
		late := model.LateLoan{
			Loan:     model.Loan{ID: 9, CustID: 1, BookID: 2, LoanDate: now.AddDate(0, 0, -3), IsLoaned: true, Active: true},
			BookName: "Dune",
			Author:   "Frank Herbert",
			MaxDays:  2,
			DueDate:  now.AddDate(0, 0, -1),
		}
		env.loanSvc.EXPECT().ListLate(gomock.Any(), now).Return([]model.LateLoan{late}, nil)

		e := newEcho()
		e.GET("/auth/loans/late", env.handler.ListLate)

		r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/auth/loans/late?now=%s", now.Format(time.RFC3339)), http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t,
			`[{"id":9,"custId":1,"bookId":2,"loanDate":"2024-03-01T00:00:00Z","returnDate":null,"isLoaned":true,"active":true,"bookName":"Dune","author":"Frank Herbert","maxDays":2,"dueDate":"2024-03-03T00:00:00Z"}]`,
			w.Body.String())
	})

	t.Run("err. invalid now", func(t *testing.T) {
		env := newTestEnv(t)

		e := newEcho()
		e.GET("/auth/loans/late", env.handler.ListLate)

		r := httptest.NewRequest(http.MethodGet, "/auth/loans/late?now=yesterday", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_DeactivateBook(t *testing.T) {
	env := newTestEnv(t)
	// soft delete is idempotent, the second call is the same no-op success
	env.catalogSvc.EXPECT().DeactivateBook(gomock.Any(), 3).Return(nil).Times(2)

	e := newEcho()
	e.DELETE("/auth/books/:id", env.handler.DeactivateBook)

	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodDelete, "/auth/books/3", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestHandler_UpdateBook(t *testing.T) {
	env := newTestEnv(t)
	newName := "Dune Messiah"
	env.catalogSvc.EXPECT().
		UpdateBook(gomock.Any(), 3, model.UpdateBookRequest{Name: &newName}).
		Return(model.Book{ID: 3, Name: newName, Author: "Frank Herbert", YearPublished: 1969, LoanTypeID: 1, Active: true}, nil)

	e := newEcho()
	e.PUT("/auth/books/:id", env.handler.UpdateBook)

	r := httptest.NewRequest(http.MethodPut, "/auth/books/3", strings.NewReader(`{"name":"Dune Messiah"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"id":3,"name":"Dune Messiah","author":"Frank Herbert","yearPublished":1969,"imageUrl":null,"loanTypeId":1,"active":true}`,
		w.Body.String())
}

func TestRouter_AuthAndRoles(t *testing.T) {
	customerIdentity := auth.Identity{Username: "alice", Role: auth.RoleCustomer, CustomerID: 7, TokenID: "tid-7"}
	librarianIdentity := auth.Identity{Username: "ran", Role: auth.RoleLibrarian, CustomerID: 1, TokenID: "tid-1"}

	t.Run("no authorization header", func(t *testing.T) {
		env := newTestEnv(t)
		e := env.handler.NewRouter()

		r := httptest.NewRequest(http.MethodGet, "/api/my-loans", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		env := newTestEnv(t)
		e := env.handler.NewRouter()

		r := httptest.NewRequest(http.MethodGet, "/api/my-loans", http.NoBody)
		r.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked session", func(t *testing.T) {
		env := newTestEnv(t)
		env.authSvc.EXPECT().CheckSession(gomock.Any(), customerIdentity).Return(errs.ErrUnauthorized)
		e := env.handler.NewRouter()

		token, err := env.tokens.Issue("alice", auth.RoleCustomer, 7, "tid-7")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/my-loans", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("my loans are scoped to the token identity", func(t *testing.T) {
		env := newTestEnv(t)
		env.authSvc.EXPECT().CheckSession(gomock.Any(), customerIdentity).Return(nil)
		env.loanSvc.EXPECT().ListMyLoans(gomock.Any(), 7).Return([]model.MyLoan{}, nil)
		e := env.handler.NewRouter()

		token, err := env.tokens.Issue("alice", auth.RoleCustomer, 7, "tid-7")
		require.NoError(t, err)

		// the query id must be ignored in favor of the authenticated id
		r := httptest.NewRequest(http.MethodGet, "/api/my-loans?custId=999", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("customer forbidden on staff routes", func(t *testing.T) {
		env := newTestEnv(t)
		env.authSvc.EXPECT().CheckSession(gomock.Any(), customerIdentity).Return(nil)
		e := env.handler.NewRouter()

		token, err := env.tokens.Issue("alice", auth.RoleCustomer, 7, "tid-7")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/auth/books", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("librarian forbidden on customer routes", func(t *testing.T) {
		env := newTestEnv(t)
		env.authSvc.EXPECT().CheckSession(gomock.Any(), librarianIdentity).Return(nil)
		e := env.handler.NewRouter()

		token, err := env.tokens.Issue("ran", auth.RoleLibrarian, 1, "tid-1")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/books/available", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("librarian dashboard", func(t *testing.T) {
		env := newTestEnv(t)
		env.authSvc.EXPECT().CheckSession(gomock.Any(), librarianIdentity).Return(nil)
		env.loanSvc.EXPECT().GetDashboard(gomock.Any()).Return(service.Dashboard{Customers: 2, Books: 4, ActiveLoans: 1, LateLoans: 0}, nil)
		e := env.handler.NewRouter()

		token, err := env.tokens.Issue("ran", auth.RoleLibrarian, 1, "tid-1")
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/admin", http.NoBody)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"customers":2,"books":4,"activeLoans":1,"lateLoans":0}`, w.Body.String())
	})
}
