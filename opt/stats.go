package opt

import "time"

// Stats are statistics about the checks run by a Solver.
type Stats struct {
	NbChecks     int // Total number of checks
	NbSat        int
	NbUnsat      int
	NbUnknown    int
	NbAborted    int
	NbRounds     int // Refinement rounds, over all objectives
	NbProbes     int // Unboundedness probes
	NbObjectives int // Objectives whose maximization completed
}

func (st *Stats) record(status Status) {
	st.NbChecks++
	switch status {
	case StatusSat:
		st.NbSat++
	case StatusUnsat:
		st.NbUnsat++
	case StatusUnknown:
		st.NbUnknown++
	case StatusAborted:
		st.NbAborted++
	}
}

// An Observer is notified of the progress of a Solver.
type Observer interface {
	// Checked is called after each check.
	Checked(status Status, elapsed time.Duration)
	// Concluded is called when the maximization of an objective ends.
	Concluded(index int, outcome Outcome, rounds int)
}

type nopObserver struct{}

func (nopObserver) Checked(Status, time.Duration) {}

func (nopObserver) Concluded(int, Outcome, int) {}
