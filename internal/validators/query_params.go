package validators

import (
	"errors"
	"strconv"
)

// Helpers for the list endpoints' query parameters. They normalize the raw
// string values into the typed form consumed by the services.

// ParsePage converts the raw page query parameter to a page number.
//
// An absent or non-numeric value selects page zero (the first page) — this
// mirrors the lenient contract of the public API. A value that is numeric
// but does not fit into an int64 is a different failure class: the store
// cannot represent it, so it is rejected with [ErrPageOutOfRange] instead
// of being silently clamped.
func ParsePage(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}

	page, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrPageOutOfRange
		}
		return 0, nil
	}

	return page, nil
}

// ParseSortOrder converts the raw ascending query parameter to a sort
// direction. The parameter is optional; when absent the listing defaults to
// descending by date. When present it must be exactly "true" or "false".
func ParseSortOrder(raw string) (bool, error) {
	switch raw {
	case "":
		return false, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrInvalidSortOrder
	}
}

// ParseResolvedFilter converts the raw resolved query parameter to an
// optional filter. The parameter is optional; when absent no resolved
// filtering is applied. When present it must be exactly "true" or "false".
func ParseResolvedFilter(raw string) (*bool, error) {
	switch raw {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, ErrInvalidResolvedFilter
	}
}
