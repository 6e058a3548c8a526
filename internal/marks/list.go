package marks

import (
	"fmt"
	"slices"
	"studydesk/pkg/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Field selects the sort key of a mark listing.
type Field string

// Sort fields.
const (
	FieldDate    Field = "date"
	FieldSubject Field = "subject"
	FieldScore   Field = "score"
)

// Order is a sort direction.
type Order string

// Sort orders.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Query describes how a mark listing is filtered and sorted. The zero value
// lists every mark newest first.
type Query struct {
	Field   Field
	Order   Order
	Subject string // exact match; empty keeps all subjects
}

// ParseField validates a sort field name. Empty selects FieldDate.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case "":
		return FieldDate, nil
	case FieldDate, FieldSubject, FieldScore:
		return f, nil
	default:
		return "", fmt.Errorf("unknown sort field %q: want date, subject or score", s)
	}
}

// ParseOrder validates a sort order. Empty selects Desc.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case "":
		return Desc, nil
	case Asc, Desc:
		return o, nil
	default:
		return "", fmt.Errorf("unknown sort order %q: want asc or desc", s)
	}
}

func (q Query) normalized() Query {
	if q.Field == "" {
		q.Field = FieldDate
	}
	if q.Order == "" {
		q.Order = Desc
	}
	return q
}

// Toggle returns the query after selecting field: the same field flips the
// order, a different field switches to it in descending order.
func (q Query) Toggle(field Field) Query {
	q = q.normalized()
	if q.Field == field {
		if q.Order == Asc {
			q.Order = Desc
		} else {
			q.Order = Asc
		}
		return q
	}
	q.Field = field
	q.Order = Desc
	return q
}

// Apply filters and sorts a copy of ms. Score sorts by percentage so marks
// out of different maxima compare fairly. Subjects use English collation.
func (q Query) Apply(ms []domain.Mark) []domain.Mark {
	q = q.normalized()
	out := make([]domain.Mark, 0, len(ms))
	for _, m := range ms {
		if q.Subject == "" || m.Subject == q.Subject {
			out = append(out, m)
		}
	}
	var cmp func(a, b domain.Mark) int
	switch q.Field {
	case FieldSubject:
		col := collate.New(language.English)
		cmp = func(a, b domain.Mark) int { return col.CompareString(a.Subject, b.Subject) }
	case FieldScore:
		cmp = func(a, b domain.Mark) int {
			pa, pb := a.Percentage(), b.Percentage()
			switch {
			case pa < pb:
				return -1
			case pa > pb:
				return 1
			}
			return 0
		}
	default:
		cmp = func(a, b domain.Mark) int { return a.Date.Compare(b.Date) }
	}
	if q.Order == Desc {
		asc := cmp
		cmp = func(a, b domain.Mark) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}
