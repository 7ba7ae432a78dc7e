package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/internal/model"
)

// IssueLoan validates both references up front for precise errors; the guarded
// insert in the repository re-checks them atomically, so a concurrent
// deactivation still cannot produce a loan against an inactive row.
func (s *Service) IssueLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	customer, err := s.repo.GetCustomerByID(ctx, req.CustID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Loan{}, errs.ErrInactiveCustomer
		}
		return model.Loan{}, err
	}
	if !customer.Active {
		return model.Loan{}, errs.ErrInactiveCustomer
	}

	book, err := s.repo.GetBook(ctx, req.BookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Loan{}, errs.ErrInactiveBook
		}
		return model.Loan{}, err
	}
	if !book.Active {
		return model.Loan{}, errs.ErrInactiveBook
	}

	loan, err := s.repo.CreateLoan(ctx, req.CustID, req.BookID, s.now().UTC())
	if err != nil {
		if errors.Is(err, errs.ErrBadRequest) {
			return model.Loan{}, errs.ErrInactiveCustomer
		}
		return model.Loan{}, err
	}

	s.publishLoanEvent(model.LoanEventIssued, loan)
	return loan, nil
}

func (s *Service) ReturnLoan(ctx context.Context, id int) (model.Loan, error) {
	returnDate := s.now().UTC()
	loan, err := s.repo.ReturnLoan(ctx, id, returnDate)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.ReturnDate != nil && loan.ReturnDate.Equal(returnDate) {
		s.publishLoanEvent(model.LoanEventReturned, loan)
	}
	return loan, nil
}

func (s *Service) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Service) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListLoans(ctx)
}

func (s *Service) UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error) {
	if req.Empty() {
		return model.Loan{}, errs.ErrBadRequest
	}
	return s.repo.UpdateLoan(ctx, id, req)
}

func (s *Service) DeactivateLoan(ctx context.Context, id int) error {
	return s.repo.DeactivateLoan(ctx, id)
}

func (s *Service) ListLate(ctx context.Context, now time.Time) ([]model.LateLoan, error) {
	return s.repo.ListLate(ctx, now)
}

func (s *Service) ListMyLoans(ctx context.Context, custID int) ([]model.MyLoan, error) {
	return s.repo.ListMyLoans(ctx, custID)
}

func (s *Service) ListAvailableBooks(ctx context.Context) ([]model.BookAvailability, error) {
	return s.repo.ListAvailableBooks(ctx)
}

type Dashboard struct {
	Customers   int `json:"customers"`
	Books       int `json:"books"`
	ActiveLoans int `json:"activeLoans"`
	LateLoans   int `json:"lateLoans"`
}

// GetDashboard aggregates counts for the librarian view.
func (s *Service) GetDashboard(ctx context.Context) (Dashboard, error) {
	var dashboard Dashboard
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		customers, err := s.repo.ListCustomers(ctx)
		if err != nil {
			return err
		}
		dashboard.Customers = len(customers)
		return nil
	})
	gg.Go(func() error {
		books, err := s.repo.ListBooks(ctx)
		if err != nil {
			return err
		}
		dashboard.Books = len(books)
		return nil
	})
	gg.Go(func() error {
		loans, err := s.repo.ListLoans(ctx)
		if err != nil {
			return err
		}
		for _, loan := range loans {
			if loan.IsLoaned {
				dashboard.ActiveLoans++
			}
		}
		return nil
	})
	gg.Go(func() error {
		late, err := s.repo.ListLate(ctx, s.now())
		if err != nil {
			return err
		}
		dashboard.LateLoans = len(late)
		return nil
	})
	if err := gg.Wait(); err != nil {
		return Dashboard{}, err
	}
	return dashboard, nil
}
