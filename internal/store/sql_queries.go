package store

import (
	sq "github.com/Masterminds/squirrel"
)

const reportsTable = "reports"

var reportColumns = []string{"id", "kind", "date", "description", "submitter_id", "resolved", "replies", "townhall_id"}

const (
	insertReport = `INSERT INTO reports (kind, date, description, submitter_id, resolved, replies, townhall_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, kind, date, description, submitter_id, resolved, replies, townhall_id;`

	findReportByID = `SELECT id, kind, date, description, submitter_id, resolved, replies, townhall_id
	FROM reports
	WHERE id = $1 AND kind = $2;`

	updateReportDescription = `UPDATE reports
	SET description = $1
	WHERE id = $2 AND kind = $3;`

	setReportResolved = `UPDATE reports
	SET resolved = $1
	WHERE id = $2 AND kind = $3;`

	// appendReportReply appends one reply and re-sorts the whole array by
	// reply date in a single statement, so concurrent appenders cannot leave
	// the thread unordered. The ::timestamptz cast matters: raw text ordering
	// misplaces timestamps with differing fractional-second precision.
	appendReportReply = `UPDATE reports
	SET replies = (
		SELECT COALESCE(jsonb_agg(reply ORDER BY (reply->>'repliedDate')::timestamptz), '[]'::jsonb)
		FROM jsonb_array_elements(replies || $1::jsonb) AS reply
	)
	WHERE id = $2 AND kind = $3;`

	deleteReport = `DELETE FROM reports
	WHERE id = $1 AND kind = $2;`
)

// psql builds parameterised listing queries with PostgreSQL-style $N
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// conditions translates the filter into a WHERE conjunction. Find and Count
// both build from this method, which keeps a listing's rows and its reported
// total in agreement.
func (f ReportFilter) conditions() sq.And {
	conditions := sq.And{sq.Eq{"kind": string(f.Kind)}}

	if f.SubmitterID != "" {
		conditions = append(conditions, sq.Eq{"submitter_id": f.SubmitterID})
	}
	if f.Resolved != nil {
		conditions = append(conditions, sq.Eq{"resolved": *f.Resolved})
	}

	return conditions
}

// buildFindQuery produces the SELECT for one page of a filtered listing,
// sorted by creation date.
func buildFindQuery(filter ReportFilter, window PageWindow) (string, []any, error) {
	order := "date DESC"
	if window.Ascending {
		order = "date ASC"
	}

	return psql.
		Select(reportColumns...).
		From(reportsTable).
		Where(filter.conditions()).
		OrderBy(order).
		Offset(window.Skip).
		Limit(window.Limit).
		ToSql()
}

// buildCountQuery produces the COUNT over the same filter a listing uses.
func buildCountQuery(filter ReportFilter) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(reportsTable).
		Where(filter.conditions()).
		ToSql()
}
