package marks

import (
	"strings"
	"studydesk/pkg/domain"
	"testing"
	"time"
)

func sample() []domain.Mark {
	return []domain.Mark{
		{ID: "1", Subject: "physics", Score: 45, MaxScore: 50, Date: domain.NewDate(2026, time.March, 3)},
		{ID: "2", Subject: "Art", Score: 70, MaxScore: 100, Date: domain.NewDate(2026, time.May, 1)},
		{ID: "3", Subject: "Math", Score: 8, MaxScore: 10, Date: domain.NewDate(2026, time.January, 9)},
		{ID: "4", Subject: "Math", Score: 19, MaxScore: 20, Date: domain.NewDate(2026, time.April, 20)},
	}
}

func ids(ms []domain.Mark) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.ID
	}
	return strings.Join(parts, ",")
}

func TestQueryApply(t *testing.T) {
	cases := []struct {
		name string
		q    Query
		want string
	}{
		{"default newest first", Query{}, "2,4,1,3"},
		{"date asc", Query{Field: FieldDate, Order: Asc}, "3,1,4,2"},
		{"subject asc collates case", Query{Field: FieldSubject, Order: Asc}, "2,3,4,1"},
		{"subject desc", Query{Field: FieldSubject, Order: Desc}, "1,3,4,2"},
		{"score by percentage desc", Query{Field: FieldScore}, "4,1,3,2"},
		{"score asc", Query{Field: FieldScore, Order: Asc}, "2,3,1,4"},
		{"subject filter", Query{Subject: "Math"}, "4,3"},
		{"unknown subject", Query{Subject: "Music"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := sample()
			if got := ids(tc.q.Apply(in)); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
			if ids(in) != "1,2,3,4" {
				t.Fatalf("input reordered")
			}
		})
	}
}

func TestQueryToggle(t *testing.T) {
	q := Query{}
	q = q.Toggle(FieldDate)
	if q.Field != FieldDate || q.Order != Asc {
		t.Fatalf("same field should flip to asc: %+v", q)
	}
	q = q.Toggle(FieldDate)
	if q.Order != Desc {
		t.Fatalf("same field should flip back: %+v", q)
	}
	q = q.Toggle(FieldDate).Toggle(FieldScore)
	if q.Field != FieldScore || q.Order != Desc {
		t.Fatalf("new field should reset to desc: %+v", q)
	}
	q.Subject = "Math"
	if q = q.Toggle(FieldSubject); q.Subject != "Math" {
		t.Fatalf("toggle dropped subject filter")
	}
}

func TestParseFieldAndOrder(t *testing.T) {
	if f, err := ParseField(""); err != nil || f != FieldDate {
		t.Fatalf("default field %s %v", f, err)
	}
	if f, err := ParseField("score"); err != nil || f != FieldScore {
		t.Fatalf("score %s %v", f, err)
	}
	if _, err := ParseField("grade"); err == nil {
		t.Fatalf("expected error")
	}
	if o, err := ParseOrder(""); err != nil || o != Desc {
		t.Fatalf("default order %s %v", o, err)
	}
	if _, err := ParseOrder("up"); err == nil {
		t.Fatalf("expected error")
	}
}
