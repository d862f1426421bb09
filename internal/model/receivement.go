package model

import "time"

// Receivement is a pending acknowledgment token created when a record is
// forwarded. The destination department closes it by confirming; the received
// flag flips false to true exactly once and never back.
type Receivement struct {
	ID           int64     `json:"id"`
	RecordID     int64     `json:"record_id"`
	DepartmentID int64     `json:"department_id"`
	Received     bool      `json:"received"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
