package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/internal/model"
)

type CatalogRepository interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeactivateBook(ctx context.Context, id int) error
	GetLoanType(ctx context.Context, id int) (model.LoanType, error)
	ListLoanTypes(ctx context.Context) ([]model.LoanType, error)
}

const bookColumns = "id, name, author, year_published, image_url, loan_type_id, active"

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("name", "author", "year_published", "image_url", "loan_type_id").
		Values(req.Name, req.Author, req.YearPublished, req.ImageURL, req.LoanTypeID).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return model.Book{}, errs.ErrUnknownLoanType
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns).
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	q := qb.Update(booksTableName).Where(sq.Eq{"id": id})
	if req.Name != nil {
		q = q.Set("name", *req.Name)
	}
	if req.Author != nil {
		q = q.Set("author", *req.Author)
	}
	if req.YearPublished != nil {
		q = q.Set("year_published", *req.YearPublished)
	}
	if req.ImageURL != nil {
		q = q.Set("image_url", *req.ImageURL)
	}
	if req.LoanTypeID != nil {
		q = q.Set("loan_type_id", *req.LoanTypeID)
	}

	query, args, err := q.Suffix("returning " + bookColumns).ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return model.Book{}, errs.ErrUnknownLoanType
		}
		r.log.Error("UpdateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeactivateBook(ctx context.Context, id int) error {
	q := `
update books
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

func (r *repository) GetLoanType(ctx context.Context, id int) (model.LoanType, error) {
	query, args, err := qb.Select("id", "name", "max_days").
		From(loanTypesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.LoanType{}, err
	}

	var loanType model.LoanType
	if err := r.db.GetContext(ctx, &loanType, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LoanType{}, errs.ErrUnknownLoanType
		}
		return model.LoanType{}, err
	}
	return loanType, nil
}

func (r *repository) ListLoanTypes(ctx context.Context) ([]model.LoanType, error) {
	query, args, err := qb.Select("id", "name", "max_days").
		From(loanTypesTableName).
		OrderBy("max_days").
		ToSql()
	if err != nil {
		return nil, err
	}

	var loanTypes []model.LoanType
	if err := r.db.SelectContext(ctx, &loanTypes, query, args...); err != nil {
		return nil, err
	}
	return loanTypes, nil
}
