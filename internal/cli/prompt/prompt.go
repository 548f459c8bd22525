// Package prompt provides interactive terminal prompts for the command loop.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
var ErrAborted = errors.New("aborted")

// IsAborted returns true if the error indicates the user aborted (Ctrl+C).
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

// wrapError converts promptui interrupt/abort errors to ErrAborted for consistent handling.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAborted(err) {
		return ErrAborted
	}
	return err
}

// Confirm prompts the user for yes/no confirmation.
// Only "yes" or "y" (case-insensitive) confirms; any other answer
// declines. Returns ErrAborted if the user presses Ctrl+C.
//
// A free-form prompt is used rather than promptui's IsConfirm mode,
// which only ever accepts a single literal y/Y keystroke.
func Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label: fmt.Sprintf("%s (yes/no)", label),
	}

	result, err := p.Run()
	if err != nil {
		return false, wrapError(err)
	}
	return IsAffirmative(result), nil
}

// IsAffirmative reports whether answer is an accepted yes form.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Input prompts for text input.
func Input(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
	}

	result, err := p.Run()
	return result, wrapError(err)
}
