// Package reframe compares two detection reports and decides whether the
// second text has reframed away the signals found in the first. Change kinds
// are classified by ordered rule evaluation; the first matching rule wins.
package reframe

import "sort"

// Change kinds, from total loss down to cosmetic drift.
const (
	KindCompleteErasure       = "complete_erasure"
	KindCoherenceCollapse     = "coherence_collapse"
	KindSemanticDisconnection = "semantic_disconnection"
	KindPartialPreservation   = "partial_preservation"
	KindMinorReframing        = "minor_reframing"
)

const (
	collapseImpact      = 0.7
	disconnectionRatio  = 0.3
	preservationCutoff  = 0.7
	impactTripThreshold = 0.3
)

// Report describes what survived between the original and revised term sets.
type Report struct {
	Preserved []string `json:"preserved"`
	Lost      []string `json:"lost"`
	New       []string `json:"new"`

	PreservationRatio float64 `json:"preservation_ratio"`
	CoherenceImpact   float64 `json:"coherence_impact"`
	Kind              string  `json:"kind"`
	Detected          bool    `json:"reframing_detected"`
	Confidence        float64 `json:"confidence"`
}

// Compare takes the matched terms of an original and a revised text plus the
// coherence impact (the drop in aggregate scan confidence, already in [0,1])
// and produces a preservation report. Term order in the inputs is irrelevant;
// outputs are sorted.
func Compare(original, revised []string, coherenceImpact float64) Report {
	origSet := toSet(original)
	revSet := toSet(revised)

	rep := Report{CoherenceImpact: coherenceImpact}
	for term := range origSet {
		if revSet[term] {
			rep.Preserved = append(rep.Preserved, term)
		} else {
			rep.Lost = append(rep.Lost, term)
		}
	}
	for term := range revSet {
		if !origSet[term] {
			rep.New = append(rep.New, term)
		}
	}
	sort.Strings(rep.Preserved)
	sort.Strings(rep.Lost)
	sort.Strings(rep.New)

	rep.PreservationRatio = float64(len(rep.Preserved)) / float64(max(len(origSet), 1))

	switch {
	case len(rep.Preserved) == 0 && len(rep.Lost) > 0:
		rep.Kind = KindCompleteErasure
	case coherenceImpact > collapseImpact:
		rep.Kind = KindCoherenceCollapse
	case rep.PreservationRatio < disconnectionRatio:
		rep.Kind = KindSemanticDisconnection
	case rep.PreservationRatio < preservationCutoff:
		rep.Kind = KindPartialPreservation
	default:
		rep.Kind = KindMinorReframing
	}

	rep.Detected = rep.PreservationRatio < preservationCutoff || coherenceImpact > impactTripThreshold
	rep.Confidence = confidence(rep)
	return rep
}

// confidence blends loss ratio, coherence impact, and churn into one
// heuristic score. None of the factors is calibrated; only bounds and
// relative ordering are meaningful.
func confidence(rep Report) float64 {
	impact := min(rep.CoherenceImpact, 1.0)
	churn := float64(len(rep.Lost)+len(rep.New)) / float64(max(len(rep.Preserved), 1))
	churn = min(churn, 1.0)
	return ((1 - rep.PreservationRatio) + impact + churn) / 3
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}
