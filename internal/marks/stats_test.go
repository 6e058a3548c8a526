package marks

import (
	"math"
	"studydesk/pkg/domain"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAggregateExample(t *testing.T) {
	ms := []domain.Mark{
		{Subject: "Math", Score: 80, MaxScore: 100},
		{Subject: "Math", Score: 60, MaxScore: 100},
		{Subject: "Art", Score: 100, MaxScore: 100},
	}
	st := Aggregate(ms)
	if !near(st.Overall, 80) {
		t.Fatalf("overall %v", st.Overall)
	}
	if st.Best != "Art" || st.Worst != "Math" {
		t.Fatalf("best=%s worst=%s", st.Best, st.Worst)
	}
	if len(st.Subjects) != 2 {
		t.Fatalf("subjects %+v", st.Subjects)
	}
	sub := st.Subjects[1]
	if sub.Subject != "Math" || !near(sub.Average, 70) || !near(sub.Lowest, 60) || !near(sub.Highest, 80) || sub.Count != 2 {
		t.Fatalf("math stats %+v", sub)
	}
	if rep := st.Repeated(); len(rep) != 1 || rep[0].Subject != "Math" {
		t.Fatalf("repeated %+v", rep)
	}
	if st.Count != 3 {
		t.Fatalf("count %d", st.Count)
	}
}

func TestAggregateEmpty(t *testing.T) {
	st := Aggregate(nil)
	if st.Overall != 0 || math.IsNaN(st.Overall) {
		t.Fatalf("overall %v", st.Overall)
	}
	if st.Best != NotApplicable || st.Worst != NotApplicable {
		t.Fatalf("best=%s worst=%s", st.Best, st.Worst)
	}
	if len(st.Subjects) != 0 || st.Repeated() != nil {
		t.Fatalf("expected no subjects")
	}
}

func TestAggregateOverallIsMeanOfMarks(t *testing.T) {
	// Subject means are 100 and 50; the overall mean weights each mark equally.
	ms := []domain.Mark{
		{Subject: "A", Score: 10, MaxScore: 10},
		{Subject: "B", Score: 5, MaxScore: 10},
		{Subject: "B", Score: 5, MaxScore: 10},
		{Subject: "B", Score: 5, MaxScore: 10},
	}
	if st := Aggregate(ms); !near(st.Overall, 62.5) {
		t.Fatalf("overall %v", st.Overall)
	}
}

func TestAggregateTiesKeepFirstAppearance(t *testing.T) {
	ms := []domain.Mark{
		{Subject: "History", Score: 7, MaxScore: 10},
		{Subject: "Biology", Score: 14, MaxScore: 20},
		{Subject: "biology", Score: 7, MaxScore: 10},
	}
	st := Aggregate(ms)
	got := []string{st.Subjects[0].Subject, st.Subjects[1].Subject, st.Subjects[2].Subject}
	want := []string{"History", "Biology", "biology"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v want %v", got, want)
		}
	}
	if st.Best != "History" || st.Worst != "biology" {
		t.Fatalf("best=%s worst=%s", st.Best, st.Worst)
	}
	if subs := Subjects(ms); len(subs) != 3 || subs[0] != "History" {
		t.Fatalf("subjects %v", subs)
	}
}

func TestGradeAndBand(t *testing.T) {
	cases := []struct {
		p     float64
		grade string
		band  Band
	}{
		{100, "O", BandExcellent},
		{90, "O", BandExcellent},
		{89.99, "A+", BandGood},
		{80, "A+", BandGood},
		{70, "A", BandFair},
		{65, "B+", BandPass},
		{55, "B", BandPoor},
		{40, "C", BandPoor},
		{39.9, "F", BandPoor},
		{0, "F", BandPoor},
	}
	for _, tc := range cases {
		if g := Grade(tc.p); g != tc.grade {
			t.Fatalf("Grade(%v)=%s want %s", tc.p, g, tc.grade)
		}
		if b := BandOf(tc.p); b != tc.band {
			t.Fatalf("BandOf(%v)=%s want %s", tc.p, b, tc.band)
		}
	}
	if p := Percentage(domain.Mark{Score: 3, MaxScore: 4}); !near(p, 75) {
		t.Fatalf("percentage %v", p)
	}
}
