package service

// Kind classifies a service failure for transport mapping. Anything that is
// not a *Error is treated as KindInternal by the HTTP layer, so store
// failures surface as opaque internal errors without leaking detail.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidInput
	KindConflict
	KindUnauthorized
	KindInternal
)

// Error is a typed service failure carrying a machine-readable code and a
// safe human-readable message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrRecordNotFound      = &Error{Kind: KindNotFound, Code: "RECORD_NOT_FOUND", Message: "record not found"}
	ErrUserNotFound        = &Error{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "user is not registered"}
	ErrDepartmentNotFound  = &Error{Kind: KindNotFound, Code: "DEPARTMENT_NOT_FOUND", Message: "department not found"}
	ErrTagNotFound         = &Error{Kind: KindNotFound, Code: "TAG_NOT_FOUND", Message: "tag not found"}
	ErrReceivementNotFound = &Error{Kind: KindNotFound, Code: "RECEIVEMENT_NOT_FOUND", Message: "receivement not found"}
	ErrAttachmentNotFound  = &Error{Kind: KindNotFound, Code: "ATTACHMENT_NOT_FOUND", Message: "attachment not found"}

	ErrInvalidID        = &Error{Kind: KindInvalidInput, Code: "INVALID_ID", Message: "invalid id provided"}
	ErrInvalidLink      = &Error{Kind: KindInvalidInput, Code: "INVALID_LINK", Message: "link must be a valid https URL"}
	ErrInvalidSituation = &Error{Kind: KindInvalidInput, Code: "INVALID_SITUATION", Message: "invalid situation provided"}
	ErrMissingReason    = &Error{Kind: KindInvalidInput, Code: "MISSING_REASON", Message: "a reason is required for this operation"}
	ErrMissingActor     = &Error{Kind: KindInvalidInput, Code: "MISSING_ACTOR", Message: "invalid user information provided"}
	ErrEmptySeiNumber   = &Error{Kind: KindInvalidInput, Code: "EMPTY_SEI_NUMBER", Message: "empty sei number provided"}
	ErrReaderNil        = &Error{Kind: KindInvalidInput, Code: "READER_NIL", Message: "attachment content is required"}

	ErrStatusAlreadySet = &Error{Kind: KindConflict, Code: "STATUS_ALREADY_SET", Message: "record situation is already set to the requested value"}
	ErrAlreadyConfirmed = &Error{Kind: KindConflict, Code: "ALREADY_CONFIRMED", Message: "receivement was already confirmed"}

	ErrDepartmentMismatch = &Error{Kind: KindUnauthorized, Code: "DEPARTMENT_MISMATCH", Message: "user does not belong to the declared origin department"}

	// ErrHistoryEmpty marks an invariant violation: every record gets a
	// creation history entry, so an existing record with no history is a
	// fault, not a valid "no location" state.
	ErrHistoryEmpty = &Error{Kind: KindInternal, Code: "HISTORY_EMPTY", Message: "record has no history entries"}
)
