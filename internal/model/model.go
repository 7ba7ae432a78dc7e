package model

import (
	"time"
)

type Customer struct {
	ID           int        `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	City         string     `json:"city" db:"city"`
	Age          *int       `json:"age" db:"age"`
	PhoneNumber  string     `json:"phoneNumber" db:"phone_number"`
	BirthDate    *time.Time `json:"birthDate" db:"birth_date"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	TokenID      *string    `json:"-" db:"token_id"`
	Active       bool       `json:"active" db:"active"`
}

type LoanType struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	MaxDays int    `json:"maxDays" db:"max_days"`
}

type Book struct {
	ID            int     `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	Author        string  `json:"author" db:"author"`
	YearPublished int     `json:"yearPublished" db:"year_published"`
	ImageURL      *string `json:"imageUrl" db:"image_url"`
	LoanTypeID    int     `json:"loanTypeId" db:"loan_type_id"`
	Active        bool    `json:"active" db:"active"`
}

type Loan struct {
	ID         int        `json:"id" db:"id"`
	CustID     int        `json:"custId" db:"cust_id"`
	BookID     int        `json:"bookId" db:"book_id"`
	LoanDate   time.Time  `json:"loanDate" db:"loan_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
	IsLoaned   bool       `json:"isLoaned" db:"is_loaned"`
	Active     bool       `json:"active" db:"active"`
}

// DueDate is loan start plus the loan type allowance.
func (l Loan) DueDate(maxDays int) time.Time {
	return l.LoanDate.AddDate(0, 0, maxDays)
}

// IsLate reports whether an unreturned loan is past due at the given moment.
func (l Loan) IsLate(maxDays int, now time.Time) bool {
	return l.IsLoaned && l.DueDate(maxDays).Before(now)
}

// LateLoan is a loan joined with its book and loan type for the late report.
type LateLoan struct {
	Loan     `json:",inline"`
	BookName string    `json:"bookName" db:"book_name"`
	Author   string    `json:"author" db:"author"`
	MaxDays  int       `json:"maxDays" db:"max_days"`
	DueDate  time.Time `json:"dueDate" db:"due_date"`
}

// MyLoan is the customer-facing projection of a loan.
type MyLoan struct {
	LoanID     int        `json:"loanId" db:"loan_id"`
	BookID     int        `json:"bookId" db:"book_id"`
	BookName   string     `json:"bookName" db:"book_name"`
	Author     string     `json:"author" db:"author"`
	LoanDate   time.Time  `json:"loanDate" db:"loan_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
	IsLoaned   bool       `json:"isLoaned" db:"is_loaned"`
}

type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "AVAILABLE"
	StatusUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// BookAvailability is read from the book_availability view, which derives the
// status from current loan state.
type BookAvailability struct {
	BookID             int                `json:"bookId" db:"book_id"`
	BookName           string             `json:"bookName" db:"book_name"`
	Author             string             `json:"author" db:"author"`
	YearPublished      int                `json:"yearPublished" db:"year_published"`
	ImageURL           *string            `json:"imageUrl" db:"image_url"`
	LoanType           string             `json:"loanType" db:"loan_type"`
	ReturnDate         *time.Time         `json:"returnDate" db:"return_date"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus" db:"availability_status"`
}

type SignUpRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	City        string `json:"city"`
	Age         *int   `json:"age" validate:"omitempty,gt=0"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	Role        string `json:"role"`
}

type UpdateCustomerRequest struct {
	City        *string `json:"city"`
	Age         *int    `json:"age" validate:"omitempty,gt=0"`
	PhoneNumber *string `json:"phoneNumber"`
	BirthDate   *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Active      *bool   `json:"active"`
}

func (r UpdateCustomerRequest) Empty() bool {
	return r.City == nil && r.Age == nil && r.PhoneNumber == nil && r.BirthDate == nil && r.Active == nil
}

type CreateBookRequest struct {
	Name          string  `json:"name" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	YearPublished int     `json:"yearPublished" validate:"required,gt=0"`
	ImageURL      *string `json:"imageUrl"`
	LoanTypeID    int     `json:"loanTypeId" validate:"required,gt=0"`
}

type UpdateBookRequest struct {
	Name          *string `json:"name"`
	Author        *string `json:"author"`
	YearPublished *int    `json:"yearPublished" validate:"omitempty,gt=0"`
	ImageURL      *string `json:"imageUrl"`
	LoanTypeID    *int    `json:"loanTypeId" validate:"omitempty,gt=0"`
}

func (r UpdateBookRequest) Empty() bool {
	return r.Name == nil && r.Author == nil && r.YearPublished == nil && r.ImageURL == nil && r.LoanTypeID == nil
}

type CreateLoanRequest struct {
	CustID int `json:"custId" validate:"required,gt=0"`
	BookID int `json:"bookId" validate:"required,gt=0"`
}

type UpdateLoanRequest struct {
	LoanDate *time.Time `json:"loanDate"`
	Active   *bool      `json:"active"`
}

func (r UpdateLoanRequest) Empty() bool {
	return r.LoanDate == nil && r.Active == nil
}

// LoanEvent is published to kafka on loan transitions when the producer is
// configured.
type LoanEvent struct {
	Type     string    `json:"type"`
	LoanID   int       `json:"loanId"`
	CustID   int       `json:"custId"`
	BookID   int       `json:"bookId"`
	Occurred time.Time `json:"occurred"`
}

const (
	LoanEventIssued   = "loan.issued"
	LoanEventReturned = "loan.returned"
)
