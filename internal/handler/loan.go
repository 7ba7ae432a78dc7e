package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/librarium/backend/internal/model"
	"github.com/librarium/backend/pkg/auth"
)

func (h *Handler) IssueLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.loanSvc.IssueLoan(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.loanSvc.ReturnLoan(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetLoan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	loan, err := h.loanSvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.loanSvc.ListLoans(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) UpdateLoan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req model.UpdateLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	loan, err := h.loanSvc.UpdateLoan(c.Request().Context(), id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) DeactivateLoan(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.loanSvc.DeactivateLoan(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListLate reports loans past due at the given moment (query param "now",
// RFC3339, defaults to the current time). Late loans stay active until they
// are explicitly returned.
func (h *Handler) ListLate(c echo.Context) error {
	now := time.Now().UTC()
	if nowParam := c.QueryParam("now"); nowParam != "" {
		parsed, err := time.Parse(time.RFC3339, nowParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "now is invalid")
		}
		now = parsed
	}

	late, err := h.loanSvc.ListLate(c.Request().Context(), now)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, late)
}

// ListMyLoans scopes strictly to the authenticated customer.
func (h *Handler) ListMyLoans(c echo.Context) error {
	identity, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}
	loans, err := h.loanSvc.ListMyLoans(c.Request().Context(), identity.CustomerID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListAvailableBooks(c echo.Context) error {
	books, err := h.loanSvc.ListAvailableBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) AdminDashboard(c echo.Context) error {
	dashboard, err := h.loanSvc.GetDashboard(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
