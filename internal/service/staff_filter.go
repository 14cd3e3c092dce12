package service

import (
	"sort"
	"strings"

	"go-clinic-staff/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Empty-state codes for the list view.
const (
	EmptyStateNoStaff   = "no_staff"
	EmptyStateNoMatches = "no_matches"
)

// SortLanguage drives the collation used when ordering staff by name.
var SortLanguage = language.English

// ListQuery holds the list view inputs. An empty Position means "all positions".
type ListQuery struct {
	Search   string `query:"search"`
	Position string `query:"position"`
}

// StaffList is the filtered, sorted result plus the unfiltered collection size.
type StaffList struct {
	Items      []model.Staff
	TotalStaff int
}

// EmptyState distinguishes "nobody on staff yet" from "nothing matches the filter".
func (l *StaffList) EmptyState() string {
	switch {
	case l.TotalStaff == 0:
		return EmptyStateNoStaff
	case len(l.Items) == 0:
		return EmptyStateNoMatches
	default:
		return ""
	}
}

// FilterStaff applies the search text, then the exact position filter, then
// sorts by (last name, first name). The input slice is left untouched.
func FilterStaff(staff []model.Staff, q ListQuery) []model.Staff {
	fold := cases.Fold()
	needle := fold.String(q.Search)

	out := make([]model.Staff, 0, len(staff))
	for _, s := range staff {
		if needle != "" && !matchesSearch(fold, s, needle) {
			continue
		}
		if q.Position != "" && s.Position != q.Position {
			continue
		}
		out = append(out, s)
	}

	col := collate.New(SortLanguage)
	sort.SliceStable(out, func(i, j int) bool {
		if c := col.CompareString(out[i].LastName, out[j].LastName); c != 0 {
			return c < 0
		}
		return col.CompareString(out[i].FirstName, out[j].FirstName) < 0
	})
	return out
}

func matchesSearch(fold cases.Caser, s model.Staff, needle string) bool {
	if strings.Contains(fold.String(s.FirstName+" "+s.LastName), needle) {
		return true
	}
	if s.Email != nil && strings.Contains(fold.String(*s.Email), needle) {
		return true
	}
	return strings.Contains(fold.String(s.Position), needle)
}
