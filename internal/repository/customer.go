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
	"github.com/librarium/backend/pkg/auth"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error)
	GetCustomerByID(ctx context.Context, id int) (model.Customer, error)
	GetCustomerByName(ctx context.Context, name string) (model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int, req model.UpdateCustomerRequest) (model.Customer, error)
	DeactivateCustomer(ctx context.Context, id int) error
	SetTokenID(ctx context.Context, custID int, tokenID string) error
	EnsureRoot(ctx context.Context, name, passwordHash string) error
}

const customerColumns = "id, name, city, age, phone_number, birth_date, password_hash, role, token_id, active"

func (r *repository) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	query, args, err := qb.Insert(customersTableName).
		Columns("name", "city", "age", "phone_number", "birth_date", "password_hash", "role").
		Values(customer.Name, customer.City, customer.Age, customer.PhoneNumber, customer.BirthDate, customer.PasswordHash, customer.Role).
		Suffix("returning " + customerColumns).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var created model.Customer
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Customer{}, errs.ErrConflict
		}
		r.log.Error("CreateCustomer", zap.String("q", query), zap.Error(err))
		return model.Customer{}, err
	}
	return created, nil
}

func (r *repository) GetCustomerByID(ctx context.Context, id int) (model.Customer, error) {
	query, args, err := qb.Select(customerColumns).
		From(customersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var customer model.Customer
	if err := r.db.GetContext(ctx, &customer, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errs.ErrNotFound
		}
		return model.Customer{}, err
	}
	return customer, nil
}

func (r *repository) GetCustomerByName(ctx context.Context, name string) (model.Customer, error) {
	query, args, err := qb.Select(customerColumns).
		From(customersTableName).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var customer model.Customer
	if err := r.db.GetContext(ctx, &customer, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errs.ErrNotFound
		}
		return model.Customer{}, err
	}
	return customer, nil
}

func (r *repository) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	query, args, err := qb.Select(customerColumns).
		From(customersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var customers []model.Customer
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repository) UpdateCustomer(ctx context.Context, id int, req model.UpdateCustomerRequest) (model.Customer, error) {
	q := qb.Update(customersTableName).Where(sq.Eq{"id": id})
	if req.City != nil {
		q = q.Set("city", *req.City)
	}
	if req.Age != nil {
		q = q.Set("age", *req.Age)
	}
	if req.PhoneNumber != nil {
		q = q.Set("phone_number", *req.PhoneNumber)
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(time.DateOnly, *req.BirthDate)
		if err != nil {
			return model.Customer{}, errs.ErrBadRequest
		}
		q = q.Set("birth_date", birthDate)
	}
	if req.Active != nil {
		q = q.Set("active", *req.Active)
	}

	query, args, err := q.Suffix("returning " + customerColumns).ToSql()
	if err != nil {
		return model.Customer{}, err
	}

	var customer model.Customer
	if err := r.db.GetContext(ctx, &customer, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Customer{}, errs.ErrNotFound
		}
		r.log.Error("UpdateCustomer", zap.String("q", query), zap.Error(err))
		return model.Customer{}, err
	}
	return customer, nil
}

func (r *repository) DeactivateCustomer(ctx context.Context, id int) error {
	q := `
update customers
    set active = false, token_id = null
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

func (r *repository) SetTokenID(ctx context.Context, custID int, tokenID string) error {
	q := `
update customers
    set token_id = $2
where id = $1`
	res, err := r.db.ExecContext(ctx, q, custID, tokenID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// EnsureRoot provisions the root identity at startup. Re-running is a no-op,
// so a changed config password does not overwrite an existing record.
func (r *repository) EnsureRoot(ctx context.Context, name, passwordHash string) error {
	query, args, err := qb.Insert(customersTableName).
		Columns("name", "password_hash", "role").
		Values(name, passwordHash, auth.RoleRoot).
		Suffix("on conflict (name) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
