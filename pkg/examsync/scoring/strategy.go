// Package scoring combines per-part (sheet) scores into subject totals.
// The combination rule is exam policy, not data-model behavior, so it is
// injected rather than hard-coded.
package scoring

import "sort"

// CommonSection is the section name shared by all takers of a subject;
// every other section is an elective.
const CommonSection = "공통"

// PartScore is one sheet's contribution to a subject total.
type PartScore struct {
	// Sheet is the workbook sheet the part came from.
	Sheet string
	// Section is the part's section name.
	Section string
	// Score is the model's score on the part.
	Score int
	// MaxScore is the part's maximum score.
	MaxScore int
}

// Strategy combines part scores into a subject (score, max score) pair.
type Strategy interface {
	Combine(parts []PartScore) (score, maxScore int)
}

// SumParts adds every part, the common-plus-elective convention used by
// the comparison charts.
type SumParts struct{}

func (SumParts) Combine(parts []PartScore) (int, int) {
	score, maxScore := 0, 0
	for _, p := range parts {
		score += p.Score
		maxScore += p.MaxScore
	}
	return score, maxScore
}

// BestElectives counts every common part plus the model's N best-scoring
// elective parts, the "choose N electives" exam convention. Fewer than N
// electives means all of them count.
type BestElectives struct {
	N int
}

func (b BestElectives) Combine(parts []PartScore) (int, int) {
	score, maxScore := 0, 0
	var electives []PartScore
	for _, p := range parts {
		if p.Section == CommonSection {
			score += p.Score
			maxScore += p.MaxScore
			continue
		}
		electives = append(electives, p)
	}

	sort.SliceStable(electives, func(i, j int) bool {
		return electives[i].Score > electives[j].Score
	})
	for i, p := range electives {
		if i >= b.N {
			break
		}
		score += p.Score
		maxScore += p.MaxScore
	}
	return score, maxScore
}
