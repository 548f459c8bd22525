package dirman

import "github.com/AntoineGaton/dirman/internal/core"

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// Name returns the node's name (last path component)
	Name() string

	// ID returns the node's session-unique identifier
	ID() string

	// Path returns the full path to the node relative from root
	Path() string
}

// TreeOperator defines the namespace operations that external consumers need
type TreeOperator interface {
	Create(pathSpec string) []CreateResult
	Delete(path string, confirm ConfirmFunc) DeleteResult
	StageDelete(path string) (*StagedDelete, DeleteResult)
	ResolveDelete(token string, ok bool) DeleteResult
	Move(source, destination string) MoveResult
	List(startPath string) ([]ListEntry, error)
}

var (
	_ TreeOperator = (*core.Tree)(nil)
	_ NodeInfo     = (*core.Node)(nil)
)
