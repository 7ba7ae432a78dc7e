package service

import (
	"context"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if _, err := s.repo.GetLoanType(ctx, req.LoanTypeID); err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	if req.Empty() {
		return model.Book{}, errs.ErrBadRequest
	}
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeactivateBook(ctx context.Context, id int) error {
	return s.repo.DeactivateBook(ctx, id)
}

func (s *Service) ListLoanTypes(ctx context.Context) ([]model.LoanType, error) {
	return s.repo.ListLoanTypes(ctx)
}
