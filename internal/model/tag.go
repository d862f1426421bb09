package model

// Tag is a colored label attached to records.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Field is a static lookup row describing a record form field.
type Field struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

// Section is a static lookup row for organizational sections.
type Section struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
