package store

import (
	"strings"
	"testing"

	"github.com/townhall-project/feedback-portal/models"
)

func TestBuildFindQuery_DefaultOrderIsDescending(t *testing.T) {
	query, args, err := buildFindQuery(
		ReportFilter{Kind: models.KindBug},
		PageWindow{Skip: 10, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "ORDER BY date DESC") {
		t.Errorf("expected descending order, got %q", query)
	}
	if !strings.Contains(query, "LIMIT 10") || !strings.Contains(query, "OFFSET 10") {
		t.Errorf("expected page window in query, got %q", query)
	}
	if len(args) != 1 || args[0] != "bug" {
		t.Errorf("expected single kind argument, got %v", args)
	}
}

func TestBuildFindQuery_AscendingOrder(t *testing.T) {
	query, _, err := buildFindQuery(
		ReportFilter{Kind: models.KindFeedback},
		PageWindow{Limit: 10, Ascending: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "ORDER BY date ASC") {
		t.Errorf("expected ascending order, got %q", query)
	}
}

func TestBuildFindQuery_SubmitterAndResolvedFilters(t *testing.T) {
	resolved := true
	query, args, err := buildFindQuery(
		ReportFilter{Kind: models.KindBug, SubmitterID: "U1", Resolved: &resolved},
		PageWindow{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "submitter_id") || !strings.Contains(query, "resolved") {
		t.Errorf("expected submitter and resolved conditions, got %q", query)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 arguments, got %v", args)
	}
}

// A listing's total must be counted over exactly the rows being paged, so the
// count query has to carry the same conditions and arguments as the find.
func TestBuildCountQuery_SharesFilterWithFind(t *testing.T) {
	resolved := false
	filter := ReportFilter{Kind: models.KindFeedback, SubmitterID: "U7", Resolved: &resolved}

	findQuery, findArgs, err := buildFindQuery(filter, PageWindow{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error building find: %v", err)
	}
	countQuery, countArgs, err := buildCountQuery(filter)
	if err != nil {
		t.Fatalf("unexpected error building count: %v", err)
	}

	findWhere := findQuery[strings.Index(findQuery, "WHERE"):strings.Index(findQuery, " ORDER BY")]
	countWhere := countQuery[strings.Index(countQuery, "WHERE"):]
	if findWhere != countWhere {
		t.Errorf("find WHERE %q differs from count WHERE %q", findWhere, countWhere)
	}

	if len(findArgs) != len(countArgs) {
		t.Fatalf("argument count mismatch: find %v, count %v", findArgs, countArgs)
	}
	for i := range findArgs {
		if findArgs[i] != countArgs[i] {
			t.Errorf("argument %d mismatch: %v vs %v", i, findArgs[i], countArgs[i])
		}
	}
}
