package core

// Outcome classifies the result of a tree operation. Operations report
// outcomes as values; nothing in the engine aborts the session.
type Outcome string

const (
	OutcomeCreated          Outcome = "created"
	OutcomeDeletedRoot      Outcome = "deleted_root"
	OutcomeDeletedSubtree   Outcome = "deleted_subtree"
	OutcomeMoved            Outcome = "moved"
	OutcomeInvalidName      Outcome = "invalid_name"
	OutcomeNotFound         Outcome = "not_found"
	OutcomeIdenticalPaths   Outcome = "identical_paths"
	OutcomeDestIsDescendant Outcome = "destination_is_descendant"
	OutcomeNameCollision    Outcome = "name_collision"
	OutcomeCancelled        Outcome = "cancelled"
)

// OK reports whether the outcome is one of the success values.
func (o Outcome) OK() bool {
	switch o {
	case OutcomeCreated, OutcomeDeletedRoot, OutcomeDeletedSubtree, OutcomeMoved:
		return true
	}
	return false
}

// ConfirmFunc answers a destructive-operation confirmation. It receives a
// human-readable description of what is about to be removed and returns
// true to proceed. A nil ConfirmFunc means confirmation is waived.
type ConfirmFunc func(target string) bool

// CreateResult is the per-sub-path record emitted by Create.
type CreateResult struct {
	Path    string
	Outcome Outcome
}

// DeleteResult reports the outcome of a Delete. ParentRemaining is the
// number of children left in the deleted node's former parent; callers use
// it to suppress listings of an emptied parent.
type DeleteResult struct {
	Path            string
	Outcome         Outcome
	ParentRemaining int
}

// MoveResult reports the outcome of a Move.
type MoveResult struct {
	Source      string
	Destination string
	Outcome     Outcome
}

// ListEntry is one row of a tree listing: the node's depth below the
// listing start, its name, and whether it is the last of its siblings.
type ListEntry struct {
	Depth  int
	Name   string
	IsLast bool
}
