package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/internal/model"
	"github.com/librarium/backend/pkg/auth"
)

func (s *Service) SignUp(ctx context.Context, req model.SignUpRequest) (model.Customer, model.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Customer{}, model.AuthResponse{}, errors.Wrap(err, "hash password")
	}

	customer := model.Customer{
		Name:         req.Username,
		City:         req.City,
		Age:          req.Age,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         auth.RoleCustomer,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
		if err != nil {
			return model.Customer{}, model.AuthResponse{}, errs.ErrBadRequest
		}
		customer.BirthDate = &birthDate
	}

	created, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return model.Customer{}, model.AuthResponse{}, err
	}

	resp, err := s.issueSession(ctx, created)
	if err != nil {
		return model.Customer{}, model.AuthResponse{}, err
	}
	return created, resp, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	customer, err := s.repo.GetCustomerByName(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrUnauthorized
		}
		return model.AuthResponse{}, err
	}
	if !customer.Active {
		return model.AuthResponse{}, errs.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrUnauthorized
	}
	return s.issueSession(ctx, customer)
}

// issueSession rotates the stored token id before signing, so any previously
// issued token stops validating the moment a new one exists.
func (s *Service) issueSession(ctx context.Context, customer model.Customer) (model.AuthResponse, error) {
	tokenID := uuid.NewString()
	if err := s.repo.SetTokenID(ctx, customer.ID, tokenID); err != nil {
		return model.AuthResponse{}, err
	}
	token, err := s.tokens.Issue(customer.Name, customer.Role, customer.ID, tokenID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(s.now().Add(s.tokens.TTL()).Unix()),
		Role:        customer.Role,
	}, nil
}

// CheckSession verifies that the parsed token still belongs to the live
// session of an active account.
func (s *Service) CheckSession(ctx context.Context, identity auth.Identity) error {
	customer, err := s.repo.GetCustomerByID(ctx, identity.CustomerID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrUnauthorized
		}
		return err
	}
	if !customer.Active {
		return errs.ErrUnauthorized
	}
	if customer.TokenID == nil || *customer.TokenID != identity.TokenID {
		return errs.ErrUnauthorized
	}
	return nil
}

// EnsureRoot provisions the privileged identity from config at startup.
func (s *Service) EnsureRoot(ctx context.Context, name, password string) error {
	if name == "" || password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash root password")
	}
	return s.repo.EnsureRoot(ctx, name, string(hash))
}

func (s *Service) GetCustomer(ctx context.Context, id int) (model.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *Service) UpdateCustomer(ctx context.Context, id int, req model.UpdateCustomerRequest) (model.Customer, error) {
	if req.Empty() {
		return model.Customer{}, errs.ErrBadRequest
	}
	return s.repo.UpdateCustomer(ctx, id, req)
}

func (s *Service) DeactivateCustomer(ctx context.Context, id int) error {
	return s.repo.DeactivateCustomer(ctx, id)
}
