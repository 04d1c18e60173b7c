package onboarding

import (
	"sort"

	"hris-onboarding/internal/catalog"
)

// Progress is the derived part of a Record.
type Progress struct {
	CurrentPhase                int
	OverallStatus               OverallStatus
	ProfileCompletionPercentage int
}

// Recompute derives the cached record fields from the ledger. It is the only
// place those fields are computed.
func Recompute(docs []Document, fileComplete bool) Progress {
	var (
		required, satisfied int
		blocked, moved      bool
	)
	phase := catalog.CompletePhase

	for _, d := range docs {
		if d.Status != DocPending {
			moved = true
		}
		if !d.IsRequired {
			continue
		}
		required++
		if IsSatisfied(d) {
			satisfied++
			continue
		}
		if d.Status == DocRejected {
			blocked = true
		}
		if d.Phase < phase {
			phase = d.Phase
		}
	}
	if phase < catalog.MinPhase {
		phase = catalog.MinPhase
	}

	pct := 100
	if required > 0 {
		pct = satisfied * 100 / required
	}

	status := OverallPending
	switch {
	case satisfied == required && fileComplete:
		status = OverallCompleted
	case blocked:
		status = OverallBlocked
	case moved:
		status = OverallInProgress
	}

	return Progress{
		CurrentPhase:                phase,
		OverallStatus:               status,
		ProfileCompletionPercentage: pct,
	}
}

// ApplyTo overwrites the cached fields of rec.
func (p Progress) ApplyTo(rec *Record) {
	rec.CurrentPhase = p.CurrentPhase
	rec.OverallStatus = p.OverallStatus
	rec.ProfileCompletionPercentage = p.ProfileCompletionPercentage
}

type PhaseSummary struct {
	Phase             int `json:"phase"`
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	RequiredTotal     int `json:"required_total"`
	RequiredCompleted int `json:"required_completed"`
	Progress          int `json:"progress"`
}

// SummarizePhases returns one entry per phase from MinPhase to CompletePhase.
func SummarizePhases(docs []Document) []PhaseSummary {
	out := make([]PhaseSummary, 0, catalog.CompletePhase)
	for n := catalog.MinPhase; n <= catalog.CompletePhase; n++ {
		out = append(out, PhaseSummary{Phase: n})
	}
	for _, d := range docs {
		if d.Phase < catalog.MinPhase || d.Phase > catalog.CompletePhase {
			continue
		}
		s := &out[d.Phase-catalog.MinPhase]
		s.Total++
		done := IsSatisfied(d)
		if done {
			s.Completed++
		}
		if d.IsRequired {
			s.RequiredTotal++
			if done {
				s.RequiredCompleted++
			}
		}
	}
	for i := range out {
		s := &out[i]
		switch {
		case s.RequiredTotal > 0:
			s.Progress = s.RequiredCompleted * 100 / s.RequiredTotal
		case s.Total > 0:
			s.Progress = s.Completed * 100 / s.Total
		default:
			s.Progress = 100
		}
	}
	return out
}

// SortDocuments orders docs by phase, sort order, then type.
func SortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if a.Phase != b.Phase {
			return a.Phase < b.Phase
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.DocumentType < b.DocumentType
	})
}
