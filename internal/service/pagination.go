package service

// reportsPerPage is the fixed page size of every report listing.
const reportsPerPage = 10

// resolvePageSkip turns a 1-based page number into a row offset. Page values
// of zero or less fall back to the first page. A page whose offset would
// exceed maxSkip is rejected with [ErrPageTooLarge] before any query runs.
func resolvePageSkip(page int64, maxSkip int64) (uint64, error) {
	if page <= 1 {
		return 0, nil
	}

	// Guard the multiplication against overflow for absurd page numbers.
	if page-1 > maxSkip/reportsPerPage {
		return 0, ErrPageTooLarge
	}

	return uint64(page-1) * reportsPerPage, nil
}
