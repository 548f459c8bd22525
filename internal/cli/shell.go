// Package cli implements the interactive command loop around the tree
// engine. The loop only dispatches and renders; all tree semantics live in
// internal/core.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AntoineGaton/dirman/config"
	"github.com/AntoineGaton/dirman/internal/cli/prompt"
	"github.com/AntoineGaton/dirman/internal/cli/render"
	"github.com/AntoineGaton/dirman/internal/core"
	"github.com/AntoineGaton/dirman/internal/util"
)

// Shell runs the interactive session: read a command, invoke the engine,
// render the result, repeat until exit or EOF.
type Shell struct {
	tree    *core.Tree
	cfg     *config.Config
	printer *render.Printer
	in      *bufio.Scanner
	confirm core.ConfirmFunc
}

// NewShell creates a Shell reading commands from stdin and rendering to
// stdout. Delete confirmations go through promptui unless disabled in cfg.
func NewShell(tree *core.Tree, cfg *config.Config) *Shell {
	s := &Shell{
		tree:    tree,
		cfg:     cfg,
		printer: render.NewPrinter(os.Stdout, cfg.Color),
		in:      bufio.NewScanner(os.Stdin),
	}
	if cfg.ConfirmDeletes {
		s.confirm = func(target string) bool {
			ok, err := prompt.Confirm(fmt.Sprintf("Are you sure you want to delete %s?", target))
			if err != nil {
				// treat an aborted prompt as a decline
				return false
			}
			return ok
		}
	}
	return s
}

// Run blocks until the user exits or input reaches EOF.
func (s *Shell) Run() error {
	logger := util.GetLogger("cli.Shell")

	if s.cfg.ShowBanner {
		s.printer.Banner()
	}
	s.printer.Menu()

	for {
		line, ok := s.readLine(s.cfg.PromptLabel + ": ")
		if !ok {
			return s.in.Err()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			s.printer.Error("Invalid command. Please try again.")
			s.printer.Rule()
			continue
		}

		cmd := strings.ToLower(fields[0])
		args := fields[1:]
		logger.Debug().Str("cmd", cmd).Strs("args", args).Msg("Dispatching command")

		switch cmd {
		case "1", "c", "create":
			path, ok := s.argOrPrompt(args, 0, "Enter path")
			if !ok {
				continue
			}
			s.doCreate(path)

		case "2", "d", "delete":
			path, ok := s.argOrPrompt(args, 0, "Enter path")
			if !ok {
				continue
			}
			s.doDelete(path)

		case "3", "m", "move":
			source, ok := s.argOrPrompt(args, 0, "Enter source path")
			if !ok {
				continue
			}
			destination, ok := s.argOrPrompt(args, 1, "Enter destination path")
			if !ok {
				continue
			}
			s.doMove(source, destination)

		case "4", "l", "list":
			s.renderListing()
			s.printer.Rule()

		case "5", "h", "help":
			s.printer.Help()

		case "6", "e", "exit", "q", "quit":
			s.printer.Plain("Thank you for using the Directory Manager!")
			s.printer.Rule()
			return nil

		default:
			s.printer.Error("Invalid command. Please try again.")
			s.printer.Rule()
		}
	}
}

// readLine shows label and reads one raw input line. ok is false at EOF.
func (s *Shell) readLine(label string) (line string, ok bool) {
	fmt.Fprint(os.Stdout, label)
	if !s.in.Scan() {
		fmt.Fprintln(os.Stdout)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// argOrPrompt returns args[i] when present, otherwise prompts for it.
func (s *Shell) argOrPrompt(args []string, i int, label string) (string, bool) {
	if i < len(args) {
		return args[i], true
	}
	value, err := prompt.Input(label)
	if err != nil {
		if !prompt.IsAborted(err) {
			s.printer.Error("Failed to read input: %v", err)
		}
		s.printer.Rule()
		return "", false
	}
	return strings.TrimSpace(value), true
}

func (s *Shell) doCreate(pathSpec string) {
	anyCreated := false
	for _, res := range s.tree.Create(pathSpec) {
		switch res.Outcome {
		case core.OutcomeCreated:
			anyCreated = true
			s.printer.Success("Directory %s created successfully", res.Path)
		case core.OutcomeInvalidName:
			s.printer.Error("Cannot create %s - invalid path name", res.Path)
		}
	}
	if anyCreated && s.cfg.ListAfterChange {
		s.renderListing()
	}
	s.printer.Rule()
}

func (s *Shell) doDelete(path string) {
	res := s.tree.Delete(path, s.confirm)
	switch res.Outcome {
	case core.OutcomeDeletedRoot:
		s.printer.Error("Root directory and all its contents have been deleted.")
		if s.cfg.ListAfterChange {
			s.renderListing()
		}
	case core.OutcomeDeletedSubtree:
		s.printer.Error("Directory %s and all its contents have been deleted.", path)
		// an emptied parent has nothing left worth listing
		if res.ParentRemaining > 0 && s.cfg.ListAfterChange {
			s.renderListing()
		}
	case core.OutcomeNotFound:
		s.printer.Error("Cannot delete %s - path does not exist", path)
	case core.OutcomeCancelled:
		s.printer.Warn("Deletion cancelled.")
	}
	s.printer.Rule()
}

func (s *Shell) doMove(source, destination string) {
	res := s.tree.Move(source, destination)
	switch res.Outcome {
	case core.OutcomeMoved:
		s.printer.Success("Moved %s to %s", source, destination)
		if s.cfg.ListAfterChange {
			s.renderListing()
		}
	case core.OutcomeInvalidName:
		s.printer.Error("Cannot move - invalid path name")
	case core.OutcomeIdenticalPaths:
		s.printer.Error("Cannot move %s - source and destination are the same", source)
	case core.OutcomeNotFound:
		s.printer.Error("Cannot move %s - path does not exist", source)
	case core.OutcomeDestIsDescendant:
		s.printer.Error("Cannot move %s - cannot move directory into its own subdirectory", source)
	case core.OutcomeNameCollision:
		segs := core.SplitPath(source)
		s.printer.Error("Cannot move %s - destination already contains a directory named %s",
			source, segs[len(segs)-1])
	}
	s.printer.Rule()
}

func (s *Shell) renderListing() {
	entries, err := s.tree.List("")
	if err != nil {
		// listing from root cannot fail; keep the session alive regardless
		s.printer.Error("Cannot list directories: %v", err)
		return
	}
	s.printer.Tree(entries)
}
