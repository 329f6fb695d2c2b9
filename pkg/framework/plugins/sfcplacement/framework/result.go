package framework

// Outcome classifies how the placement of one SFC ended
type Outcome string

const (
	OutcomePlaced         Outcome = "Placed"
	OutcomeNoPath         Outcome = "NoPath"
	OutcomeBudgetExceeded Outcome = "BudgetExceeded"
	// OutcomeCommitRejected means a path was found but its resources could not be reserved
	OutcomeCommitRejected Outcome = "CommitRejected"
)

// PlacementResult records what happened to one SFC in a run
type PlacementResult struct {
	SFC     SFC
	Outcome Outcome
	Path    Path
	// StartNode is the origin chosen for this search
	StartNode int

	LinkDelay       int
	ProcessingDelay int
	// WithinBudget is informational: the search does not enforce MaxDelay
	WithinBudget bool
	Committed    bool

	Expansions int
	Message    string
}

// Found reports whether a path was found, regardless of commit
func (r PlacementResult) Found() bool {
	return r.Outcome == OutcomePlaced || r.Outcome == OutcomeCommitRejected
}
