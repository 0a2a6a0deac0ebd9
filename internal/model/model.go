package model

// Entity shapes as they appear on the wire and on disk. Cross-collection id
// fields (Appointment.ContactID, Task.CustomerID) are soft references: no
// integrity is enforced and deleting a contact leaves them dangling.
// Appointment.ContactName/ContactPhone are a snapshot taken at creation and
// are not kept in sync with later contact edits.

type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Appointment struct {
	ID           string  `json:"id"`
	ContactID    string  `json:"contactId"`
	ContactName  string  `json:"contactName"`
	ContactPhone string  `json:"contactPhone"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Service      string  `json:"service"`
	Amount       float64 `json:"amount"`
	PaymentType  string  `json:"paymentType"`
}

type Task struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	CreatedAt    string  `json:"createdAt"`
	DueDate      *string `json:"dueDate"`
	Notes        *string `json:"notes"`
	CustomerID   *string `json:"customerId"`
	CustomerName *string `json:"customerName"`
	Completed    bool    `json:"completed"`
}

// User.Password is stored and compared in cleartext — a known deficiency
// (no hashing, no salting) that is documented rather than fixed here.
// Responses strip the field; the file on disk does not.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)
