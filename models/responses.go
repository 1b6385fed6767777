package models

// ReportCreatedResponse is the success body of POST /create-report.
type ReportCreatedResponse struct {
	ID string `json:"id"`
}

// ReportListResponse is the success body of the list endpoints. Count is the
// total number of reports matching the same filter that produced Reports,
// not the size of the returned page.
type ReportListResponse struct {
	Reports []Report `json:"reports"`
	Count   int64    `json:"count"`
}

// ReportResponse wraps a single report.
type ReportResponse struct {
	Report Report `json:"report"`
}
