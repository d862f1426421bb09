package model

// Department is an organizational unit. Static reference data; the routing
// core never creates or mutates departments.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User identifies an actor by email. Read-only reference data here; user
// management lives outside this service.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"department_id"`
}
