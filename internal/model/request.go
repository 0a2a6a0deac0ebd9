package model

import (
	"fmt"
	"time"

	"salon-management-api/internal/store"
)

// ValidationError reports a request body that failed boundary validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: "required"}
}

type CreateContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r *CreateContactRequest) Validate() error {
	if r.Name == "" {
		return required("name")
	}
	return nil
}

func (r *CreateContactRequest) Record() store.Record {
	return store.Record{"name": r.Name, "phone": r.Phone}
}

type CreateAppointmentRequest struct {
	ContactID    string  `json:"contactId"`
	ContactName  string  `json:"contactName"`
	ContactPhone string  `json:"contactPhone"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Service      string  `json:"service"`
	Amount       float64 `json:"amount"`
	PaymentType  string  `json:"paymentType"`
}

func (r *CreateAppointmentRequest) Validate() error {
	if r.Date == "" {
		return required("date")
	}
	if r.PaymentType != PaymentCash && r.PaymentType != PaymentCard {
		return &ValidationError{Field: "paymentType", Reason: `must be "cash" or "card"`}
	}
	return nil
}

func (r *CreateAppointmentRequest) Record() store.Record {
	return store.Record{
		"contactId":    r.ContactID,
		"contactName":  r.ContactName,
		"contactPhone": r.ContactPhone,
		"date":         r.Date,
		"time":         r.Time,
		"service":      r.Service,
		"amount":       r.Amount,
		"paymentType":  r.PaymentType,
	}
}

type CreateTaskRequest struct {
	Title        string  `json:"title"`
	CreatedAt    string  `json:"createdAt"`
	DueDate      *string `json:"dueDate"`
	Notes        *string `json:"notes"`
	CustomerID   *string `json:"customerId"`
	CustomerName *string `json:"customerName"`
	Completed    *bool   `json:"completed"`
}

func (r *CreateTaskRequest) Validate() error {
	if r.Title == "" {
		return required("title")
	}
	return nil
}

// Record fills server-side defaults: createdAt when the client omitted it,
// completed false.
func (r *CreateTaskRequest) Record(now time.Time) store.Record {
	createdAt := r.CreatedAt
	if createdAt == "" {
		createdAt = now.Format(time.RFC3339)
	}
	completed := false
	if r.Completed != nil {
		completed = *r.Completed
	}
	rec := store.Record{
		"title":     r.Title,
		"createdAt": createdAt,
		"completed": completed,
	}
	rec["dueDate"] = optional(r.DueDate)
	rec["notes"] = optional(r.Notes)
	rec["customerId"] = optional(r.CustomerID)
	rec["customerName"] = optional(r.CustomerName)
	return rec
}

// optional keeps absent pointer fields as JSON null in the stored record.
func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return required("username")
	}
	if r.Password == "" {
		return required("password")
	}
	return nil
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return required("username")
	}
	if r.Password == "" {
		return required("password")
	}
	return nil
}

func (r *RegisterRequest) Record(now time.Time) store.Record {
	return store.Record{
		"username":  r.Username,
		"password":  r.Password,
		"name":      r.Name,
		"email":     r.Email,
		"phone":     r.Phone,
		"createdAt": now.Format(time.RFC3339),
	}
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Record includes the password only when one was supplied, so an empty form
// field never blanks the stored credential.
func (r *UpdateUserRequest) Record() store.Record {
	rec := store.Record{
		"name":  r.Name,
		"email": r.Email,
		"phone": r.Phone,
	}
	if r.Password != "" {
		rec["password"] = r.Password
	}
	return rec
}
