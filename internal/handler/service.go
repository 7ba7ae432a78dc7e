package handler

import (
	"context"
	"time"

	"github.com/librarium/backend/internal/model"
	"github.com/librarium/backend/internal/service"
	"github.com/librarium/backend/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (model.Customer, model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	CheckSession(ctx context.Context, identity auth.Identity) error
	GetCustomer(ctx context.Context, id int) (model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int, req model.UpdateCustomerRequest) (model.Customer, error)
	DeactivateCustomer(ctx context.Context, id int) error
}

type CatalogService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeactivateBook(ctx context.Context, id int) error
	ListLoanTypes(ctx context.Context) ([]model.LoanType, error)
}

type LoanService interface {
	IssueLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	ReturnLoan(ctx context.Context, id int) (model.Loan, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
	UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error)
	DeactivateLoan(ctx context.Context, id int) error
	ListLate(ctx context.Context, now time.Time) ([]model.LateLoan, error)
	ListMyLoans(ctx context.Context, custID int) ([]model.MyLoan, error)
	ListAvailableBooks(ctx context.Context) ([]model.BookAvailability, error)
	GetDashboard(ctx context.Context) (service.Dashboard, error)
}

var (
	_ AuthService    = (*service.Service)(nil)
	_ CatalogService = (*service.Service)(nil)
	_ LoanService    = (*service.Service)(nil)
)
