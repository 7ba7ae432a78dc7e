package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/internal/model"
)

type LoanRepository interface {
	CreateLoan(ctx context.Context, custID, bookID int, loanDate time.Time) (model.Loan, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
	UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error)
	DeactivateLoan(ctx context.Context, id int) error
	ReturnLoan(ctx context.Context, id int, returnDate time.Time) (model.Loan, error)
	ListLate(ctx context.Context, now time.Time) ([]model.LateLoan, error)
	ListMyLoans(ctx context.Context, custID int) ([]model.MyLoan, error)
	ListAvailableBooks(ctx context.Context) ([]model.BookAvailability, error)
}

const loanColumns = "id, cust_id, book_id, loan_date, return_date, is_loaned, active"

// CreateLoan inserts a loan only when both references are active, in a single
// statement so concurrent deactivation cannot slip in between check and insert.
// The partial unique index on loans(book_id) rejects a second active loan.
func (r *repository) CreateLoan(ctx context.Context, custID, bookID int, loanDate time.Time) (model.Loan, error) {
	q := `
insert into loans (cust_id, book_id, loan_date)
select c.id, b.id, $3
from customers c, books b
where c.id = $1 and c.active
  and b.id = $2 and b.active
returning ` + loanColumns

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, q, custID, bookID, loanDate); err != nil {
		if isUniqueViolation(err) {
			return model.Loan{}, errs.ErrBookLoaned
		}
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrBadRequest
		}
		r.log.Error("CreateLoan", zap.Int("custID", custID), zap.Int("bookID", bookID), zap.Error(err))
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context) ([]model.Loan, error) {
	query, args, err := qb.Select(loanColumns).
		From(loansTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, query, args...); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) UpdateLoan(ctx context.Context, id int, req model.UpdateLoanRequest) (model.Loan, error) {
	q := qb.Update(loansTableName).Where(sq.Eq{"id": id})
	if req.LoanDate != nil {
		q = q.Set("loan_date", *req.LoanDate)
	}
	if req.Active != nil {
		q = q.Set("active", *req.Active)
	}

	query, args, err := q.Suffix("returning " + loanColumns).ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		r.log.Error("UpdateLoan", zap.String("q", query), zap.Error(err))
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) DeactivateLoan(ctx context.Context, id int) error {
	q := `
update loans
    set active = false
where id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ReturnLoan marks a loan returned. The where clause makes the transition a
// no-op once applied: a second call finds no loaned row and returns the loan
// as it stands, return_date untouched.
func (r *repository) ReturnLoan(ctx context.Context, id int, returnDate time.Time) (model.Loan, error) {
	q := `
update loans
    set is_loaned = false, active = false, return_date = $2
where id = $1 and is_loaned
returning ` + loanColumns

	var loan model.Loan
	err := r.db.GetContext(ctx, &loan, q, id, returnDate)
	if err == nil {
		return loan, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Loan{}, err
	}
	return r.GetLoan(ctx, id)
}

func (r *repository) ListLate(ctx context.Context, now time.Time) ([]model.LateLoan, error) {
	q := `
select l.id, l.cust_id, l.book_id, l.loan_date, l.return_date, l.is_loaned, l.active,
       b.name as book_name, b.author, lt.max_days,
       l.loan_date + make_interval(days => lt.max_days) as due_date
from loans l
         join books b on b.id = l.book_id
         join loan_types lt on lt.id = b.loan_type_id
where l.is_loaned
  and l.loan_date + make_interval(days => lt.max_days) < $1
order by due_date`

	var late []model.LateLoan
	if err := r.db.SelectContext(ctx, &late, q, now); err != nil {
		return nil, err
	}
	return late, nil
}

func (r *repository) ListMyLoans(ctx context.Context, custID int) ([]model.MyLoan, error) {
	q := `
select l.id as loan_id, l.book_id, b.name as book_name, b.author,
       l.loan_date, l.return_date, l.is_loaned
from loans l
         join books b on b.id = l.book_id
where l.cust_id = $1
order by l.loan_date desc`

	var loans []model.MyLoan
	if err := r.db.SelectContext(ctx, &loans, q, custID); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) ListAvailableBooks(ctx context.Context) ([]model.BookAvailability, error) {
	query, args, err := qb.Select("book_id", "book_name", "author", "year_published", "image_url", "loan_type", "return_date", "availability_status").
		From(bookAvailabilityViewName).
		OrderBy("book_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookAvailability
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}
