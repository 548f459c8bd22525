package core

import (
	"fmt"

	"github.com/AntoineGaton/dirman/internal/util"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// Tree owns the root node and exposes all path-addressed operations.
// It is single-writer: one Tree per session, mutated by one caller at a
// time. Every operation is a one-shot transaction; the only cross-call
// state is the tree itself (and staged deletes awaiting confirmation).
type Tree struct {
	root   *Node
	staged *xsync.Map[string, *stagedDelete] // pending deletes by token
}

// stagedDelete captures a delete awaiting confirmation.
type stagedDelete struct {
	path   string
	parent *Node // nil for a root clear
	name   string
}

// NewTree creates a Tree with an empty root.
func NewTree() *Tree {
	return &Tree{
		root:   NewNode(""),
		staged: xsync.NewMap[string, *stagedDelete](),
	}
}

// Root returns the sentinel root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Resolve walks path from the root and returns the target's parent, the
// target itself (nil if absent), and the path's final segment name.
// If an intermediate segment is missing the walk fails early: parent and
// node are both nil but last still carries the final segment, which is how
// Delete and Move report not-found targets. A root path resolves to
// (nil, root, "").
func (t *Tree) Resolve(path string) (parent, node *Node, last string) {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return nil, t.root, ""
	}

	last = segs[len(segs)-1]
	cur := t.root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := cur.GetChild(seg)
		if !ok {
			return nil, nil, last
		}
		cur = child
	}
	node, _ = cur.GetChild(last)
	return cur, node, last
}

// materialize walks segs from the root, creating any missing nodes along
// the way, and returns the leaf plus the number of nodes created.
// Equivalent to `mkdir -p`: existing nodes are reused, never an error.
func (t *Tree) materialize(segs []string) (*Node, int) {
	cur := t.root
	newCnt := 0
	for _, name := range segs {
		if child, ok := cur.GetChild(name); ok {
			cur = child
		} else {
			node := NewNode(name)
			cur.AddChild(node)
			newCnt++
			cur = node
		}
	}
	return cur, newCnt
}

// Create makes every directory named by pathSpec, expanding comma lists
// and creating missing ancestors. Each expanded sub-path is processed
// independently: an invalid one is recorded and skipped while the rest
// still apply, and creating an existing path is a no-op success.
func (t *Tree) Create(pathSpec string) []CreateResult {
	logger := util.GetLogger("Tree.Create")

	paths := ExpandPathList(pathSpec)
	results := make([]CreateResult, 0, len(paths))
	for _, p := range paths {
		if !ValidatePath(p) {
			logger.Debug().Str("path", p).Msg("Rejected invalid path name")
			results = append(results, CreateResult{Path: p, Outcome: OutcomeInvalidName})
			continue
		}
		_, newCnt := t.materialize(SplitPath(p))
		if newCnt > 0 {
			logger.Info().Str("path", p).Msg(fmt.Sprintf("Created %d new dir(s)", newCnt))
		}
		results = append(results, CreateResult{Path: p, Outcome: OutcomeCreated})
	}
	return results
}

// isRootAlias reports whether path names the root for deletion purposes:
// the empty path, any pure-separator path, or the literal "root" forms.
func isRootAlias(path string) bool {
	if len(SplitPath(path)) == 0 {
		return true
	}
	return path == "root" || path == "root/"
}

// Delete removes the subtree at path. Root aliases clear all of root's
// children but keep the root itself. Confirmation is requested through
// confirm for root clears and for targets that have children; a leaf
// never prompts. A nil confirm waives confirmation entirely.
func (t *Tree) Delete(path string, confirm ConfirmFunc) DeleteResult {
	logger := util.GetLogger("Tree.Delete")

	if isRootAlias(path) {
		if confirm != nil && !confirm("root directory and all its contents") {
			return DeleteResult{Path: path, Outcome: OutcomeCancelled}
		}
		t.clearRoot()
		logger.Info().Msg("Cleared root directory")
		return DeleteResult{Path: path, Outcome: OutcomeDeletedRoot}
	}

	parent, node, last := t.Resolve(path)
	if parent == nil || node == nil {
		logger.Debug().Str("path", path).Msg("Delete target does not exist")
		return DeleteResult{Path: path, Outcome: OutcomeNotFound}
	}

	if node.NumChildren() > 0 && confirm != nil &&
		!confirm(fmt.Sprintf("directory %q and its subdirectories", path)) {
		return DeleteResult{Path: path, Outcome: OutcomeCancelled}
	}

	parent.RemoveChild(last)
	logger.Info().Str("path", path).Msg("Deleted subtree")
	return DeleteResult{
		Path:            path,
		Outcome:         OutcomeDeletedSubtree,
		ParentRemaining: parent.NumChildren(),
	}
}

// StagedDelete is a delete held open until ResolveDelete is called with
// its token. Target describes what will be removed, for prompting.
type StagedDelete struct {
	Token  string
	Path   string
	Target string
}

// StageDelete is the two-phase form of Delete for callers that cannot
// block on a confirmation callback. Deletes that Delete would perform
// without prompting (leaves, missing paths) complete immediately and
// return a nil StagedDelete; otherwise the delete is parked under a fresh
// token until ResolveDelete commits or cancels it.
func (t *Tree) StageDelete(path string) (*StagedDelete, DeleteResult) {
	if isRootAlias(path) {
		token := uuid.NewString()
		t.staged.Store(token, &stagedDelete{path: path})
		return &StagedDelete{
			Token:  token,
			Path:   path,
			Target: "root directory and all its contents",
		}, DeleteResult{}
	}

	parent, node, last := t.Resolve(path)
	if parent == nil || node == nil {
		return nil, DeleteResult{Path: path, Outcome: OutcomeNotFound}
	}
	if node.NumChildren() == 0 {
		// trivial delete, nothing to confirm
		return nil, t.Delete(path, nil)
	}

	token := uuid.NewString()
	t.staged.Store(token, &stagedDelete{path: path, parent: parent, name: last})
	return &StagedDelete{
		Token:  token,
		Path:   path,
		Target: fmt.Sprintf("directory %q and its subdirectories", path),
	}, DeleteResult{}
}

// ResolveDelete commits (ok=true) or cancels (ok=false) a staged delete.
// An unknown or already-resolved token reports OutcomeNotFound. The tree
// is re-checked at commit time in case it changed since staging.
func (t *Tree) ResolveDelete(token string, ok bool) DeleteResult {
	staged, exists := t.staged.LoadAndDelete(token)
	if !exists {
		return DeleteResult{Outcome: OutcomeNotFound}
	}
	if !ok {
		return DeleteResult{Path: staged.path, Outcome: OutcomeCancelled}
	}
	if staged.parent == nil {
		t.clearRoot()
		return DeleteResult{Path: staged.path, Outcome: OutcomeDeletedRoot}
	}
	if _, found := staged.parent.RemoveChild(staged.name); !found {
		return DeleteResult{Path: staged.path, Outcome: OutcomeNotFound}
	}
	return DeleteResult{
		Path:            staged.path,
		Outcome:         OutcomeDeletedSubtree,
		ParentRemaining: staged.parent.NumChildren(),
	}
}

func (t *Tree) clearRoot() {
	for _, name := range t.root.ChildNames() {
		t.root.RemoveChild(name)
	}
}

// Move re-parents the subtree at source under destination. Preconditions
// are checked in order and the first failure wins, before any mutation:
// both paths valid, not textually identical, source exists, destination
// not equal to or inside source. The destination path is then materialized
// like Create and becomes the moved node's new parent directory; the node
// keeps its own name. An existing child of that name at the destination
// fails the move with no mutation on either side.
func (t *Tree) Move(source, destination string) MoveResult {
	logger := util.GetLogger("Tree.Move")
	res := MoveResult{Source: source, Destination: destination}

	if !ValidatePath(source) || !ValidatePath(destination) {
		res.Outcome = OutcomeInvalidName
		return res
	}
	if source == destination {
		res.Outcome = OutcomeIdenticalPaths
		return res
	}

	srcParent, srcNode, srcName := t.Resolve(source)
	if srcParent == nil || srcNode == nil {
		logger.Debug().Str("source", source).Msg("Move source does not exist")
		res.Outcome = OutcomeNotFound
		return res
	}

	// Collapsed-separator equality counts as self-nesting too ("a" vs "a/").
	if SamePath(source, destination) || IsSubpath(source, destination) {
		res.Outcome = OutcomeDestIsDescendant
		return res
	}

	dest, _ := t.materialize(SplitPath(destination))
	if _, exists := dest.GetChild(srcName); exists {
		// A collision means the destination chain already existed in full,
		// so materialize created nothing and the tree is unchanged.
		logger.Debug().
			Str("source", source).
			Str("destination", destination).
			Msg("Move destination already contains source name")
		res.Outcome = OutcomeNameCollision
		return res
	}

	srcParent.RemoveChild(srcName)
	dest.AddChild(srcNode)
	logger.Info().Str("source", source).Str("destination", destination).Msg("Moved subtree")
	res.Outcome = OutcomeMoved
	return res
}

// List returns the tree rows below startPath (root when empty), freshly
// computed on every call. Children are listed alphabetically at each
// level; an empty tree yields no rows. Listing never mutates the tree.
func (t *Tree) List(startPath string) ([]ListEntry, error) {
	start := t.root
	if len(SplitPath(startPath)) > 0 {
		_, node, _ := t.Resolve(startPath)
		if node == nil {
			return nil, fmt.Errorf("path does not exist: %s", startPath)
		}
		start = node
	}

	var entries []ListEntry
	walk(start, 0, &entries)
	return entries, nil
}

func walk(n *Node, depth int, out *[]ListEntry) {
	names := n.ChildNames()
	for i, name := range names {
		child, ok := n.GetChild(name)
		if !ok {
			continue
		}
		*out = append(*out, ListEntry{Depth: depth, Name: name, IsLast: i == len(names)-1})
		walk(child, depth+1, out)
	}
}
