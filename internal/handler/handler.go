package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/librarium/backend/internal/errs"
	"github.com/librarium/backend/pkg/auth"
	"github.com/librarium/backend/pkg/validate"
)

type Handler struct {
	authSvc    AuthService
	catalogSvc CatalogService
	loanSvc    LoanService
	tokens     *auth.TokenManager
	log        *zap.Logger
}

func New(authSvc AuthService, catalogSvc CatalogService, loanSvc LoanService, tokens *auth.TokenManager, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:    authSvc,
		catalogSvc: catalogSvc,
		loanSvc:    loanSvc,
		tokens:     tokens,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	authGroup := e.Group("/auth",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	authGroup.POST("/signup", h.SignUp)
	authGroup.POST("/customers", h.SignUp)
	authGroup.POST("/login", h.Login)

	staff := authGroup.Group("", h.authenticate, requireRole(auth.RoleLibrarian, auth.RoleRoot))
	staff.GET("/customers", h.ListCustomers)
	staff.GET("/customers/:id", h.GetCustomer)
	staff.PUT("/customers/:id", h.UpdateCustomer)
	staff.DELETE("/customers/:id", h.DeactivateCustomer)

	staff.POST("/books", h.CreateBook)
	staff.GET("/books", h.ListBooks)
	staff.GET("/books/:id", h.GetBook)
	staff.PUT("/books/:id", h.UpdateBook)
	staff.DELETE("/books/:id", h.DeactivateBook)

	staff.POST("/loans", h.IssueLoan)
	staff.GET("/loans", h.ListLoans)
	staff.GET("/loans/late", h.ListLate)
	staff.GET("/loans/:id", h.GetLoan)
	staff.PUT("/loans/:id", h.UpdateLoan)
	staff.DELETE("/loans/:id", h.DeactivateLoan)
	staff.POST("/loans/:id/return", h.ReturnLoan)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		h.authenticate,
	)
	api.GET("/books/available", h.ListAvailableBooks, requireRole(auth.RoleCustomer))
	api.GET("/my-loans", h.ListMyLoans, requireRole(auth.RoleCustomer))
	api.GET("/admin", h.AdminDashboard, requireRole(auth.RoleLibrarian, auth.RoleRoot))
	api.GET("/loan-types", h.ListLoanTypes)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain sentinels to statuses; anything unrecognized becomes a
// generic 500 so internals never reach the caller.
func (h *Handler) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrBadRequest),
		errors.Is(err, errs.ErrUnknownLoanType),
		errors.Is(err, errs.ErrInactiveCustomer),
		errors.Is(err, errs.ErrInactiveBook):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrBookLoaned):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
