// Package marks derives per-subject statistics, grades and sorted listings from
// recorded marks.
package marks

import (
	"slices"
	"studydesk/pkg/domain"
)

// NotApplicable is reported as best and worst subject when there are no marks.
const NotApplicable = "N/A"

// SubjectStats summarises the marks of one subject. Every figure is a
// percentage.
type SubjectStats struct {
	Subject string
	Average float64
	Highest float64
	Lowest  float64
	Count   int
}

// Stats is the aggregate over a set of marks.
type Stats struct {
	// Overall is the mean of every individual percentage, not of subject averages.
	Overall float64
	// Subjects is ordered by descending average; ties keep first-appearance order.
	Subjects []SubjectStats
	Best     string
	Worst    string
	Count    int
}

// Percentage returns the mark on a 0-100 scale.
func Percentage(m domain.Mark) float64 { return m.Percentage() }

// Aggregate groups ms by exact subject text and ranks the subjects.
func Aggregate(ms []domain.Mark) Stats {
	st := Stats{Best: NotApplicable, Worst: NotApplicable, Count: len(ms), Subjects: []SubjectStats{}}
	if len(ms) == 0 {
		return st
	}
	index := make(map[string]int)
	sums := []float64{}
	total := 0.0
	for _, m := range ms {
		p := m.Percentage()
		total += p
		i, ok := index[m.Subject]
		if !ok {
			i = len(st.Subjects)
			index[m.Subject] = i
			st.Subjects = append(st.Subjects, SubjectStats{Subject: m.Subject, Highest: p, Lowest: p})
			sums = append(sums, 0)
		}
		s := &st.Subjects[i]
		sums[i] += p
		s.Count++
		s.Highest = max(s.Highest, p)
		s.Lowest = min(s.Lowest, p)
	}
	for i := range st.Subjects {
		st.Subjects[i].Average = sums[i] / float64(st.Subjects[i].Count)
	}
	slices.SortStableFunc(st.Subjects, func(a, b SubjectStats) int {
		switch {
		case a.Average > b.Average:
			return -1
		case a.Average < b.Average:
			return 1
		default:
			return 0
		}
	})
	st.Overall = total / float64(len(ms))
	st.Best = st.Subjects[0].Subject
	st.Worst = st.Subjects[len(st.Subjects)-1].Subject
	return st
}

// Repeated returns the subjects with more than one mark, in ranking order.
// Only these have a highest-to-lowest spread worth showing.
func (s Stats) Repeated() []SubjectStats {
	var out []SubjectStats
	for _, sub := range s.Subjects {
		if sub.Count > 1 {
			out = append(out, sub)
		}
	}
	return out
}

// Subjects lists the distinct subjects of ms in first-appearance order.
func Subjects(ms []domain.Mark) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range ms {
		if !seen[m.Subject] {
			seen[m.Subject] = true
			out = append(out, m.Subject)
		}
	}
	return out
}
