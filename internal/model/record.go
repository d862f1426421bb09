package model

import (
	"fmt"
	"time"
)

// Record is a tracked document case moving through departmental review.
// This is a pure domain model with no database-specific dependencies or tags.
type Record struct {
	ID                 int64     `json:"id"`
	RegisterNumber     string    `json:"register_number"`
	Situation          Situation `json:"situation"`
	InclusionDate      time.Time `json:"inclusion_date"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Requester          string    `json:"requester"`
	DocumentType       string    `json:"document_type"`
	DocumentNumber     string    `json:"document_number"`
	DocumentDate       string    `json:"document_date"`
	Deadline           string    `json:"deadline"`
	Description        string    `json:"description"`
	SeiNumber          string    `json:"sei_number"`
	ReceiptForm        string    `json:"receipt_form"`
	ContactInfo        string    `json:"contact_info"`
	Link               string    `json:"link"`
	KeyWords           string    `json:"key_words"`
	HavePhysicalObject bool      `json:"have_physical_object"`
	AssignedTo         string    `json:"assigned_to"`

	Tags         []Tag         `json:"tags,omitempty"`
	Departments  []Department  `json:"departments,omitempty"`
	Receivements []Receivement `json:"receivements,omitempty"`
}

// FormatRegisterNumber renders a year-scoped sequence as the human-readable
// register number, e.g. 42 in 2026 becomes "000042/2026". Register numbers
// are assigned exactly once, at creation.
func FormatRegisterNumber(seq int64, year int) string {
	return fmt.Sprintf("%06d/%d", seq, year)
}
