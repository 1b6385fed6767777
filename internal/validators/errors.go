package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDescription    = errors.New("description is required")
	ErrEmptyTownhallID     = errors.New("townhall ID is required")
	ErrNoUser              = errors.New("user identity is required")
	ErrEmptyUserID         = errors.New("user ID is required")
	ErrEmptyReportID       = errors.New("report ID is required")
	ErrEmptyNewDescription = errors.New("new description is required")
	ErrEmptyReplyContent   = errors.New("reply content is required")

	// ErrResolvedStatusNotBoolean rejects resolvedStatus values that are not
	// a strict JSON boolean. Truthy stand-ins such as "true" or 1 are never
	// coerced.
	ErrResolvedStatusNotBoolean = errors.New("resolved status must be a boolean")

	// ErrPageOutOfRange rejects page numbers that are numeric but exceed the
	// representable range. Non-numeric page values are not an error; they
	// fall back to the first page.
	ErrPageOutOfRange = errors.New("page number is out of range")

	// ErrInvalidSortOrder rejects ascending values other than the exact
	// strings "true" and "false".
	ErrInvalidSortOrder = errors.New("ascending must be `true` or `false`")

	// ErrInvalidResolvedFilter rejects resolved filter values other than the
	// exact strings "true" and "false".
	ErrInvalidResolvedFilter = errors.New("resolved filter must be `true` or `false`")
)
