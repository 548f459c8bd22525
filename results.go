package dirman

import "github.com/AntoineGaton/dirman/internal/core"

// Result and outcome types re-exported for external consumers.
type (
	Outcome      = core.Outcome
	ConfirmFunc  = core.ConfirmFunc
	CreateResult = core.CreateResult
	DeleteResult = core.DeleteResult
	MoveResult   = core.MoveResult
	ListEntry    = core.ListEntry
	StagedDelete = core.StagedDelete
)

const (
	OutcomeCreated          = core.OutcomeCreated
	OutcomeDeletedRoot      = core.OutcomeDeletedRoot
	OutcomeDeletedSubtree   = core.OutcomeDeletedSubtree
	OutcomeMoved            = core.OutcomeMoved
	OutcomeInvalidName      = core.OutcomeInvalidName
	OutcomeNotFound         = core.OutcomeNotFound
	OutcomeIdenticalPaths   = core.OutcomeIdenticalPaths
	OutcomeDestIsDescendant = core.OutcomeDestIsDescendant
	OutcomeNameCollision    = core.OutcomeNameCollision
	OutcomeCancelled        = core.OutcomeCancelled
)
