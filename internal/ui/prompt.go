package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
)

// ConfirmPrompt asks a yes/no confirmation question
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, fmt.Errorf("operation cancelled by user")
		}
		return false, err
	}

	// promptui returns "y" for yes
	return result == "y", nil
}

// SourceOption is one selectable mirror source
type SourceOption struct {
	Name string
	URL  string
}

// SelectSourcePrompt presents the mirror sources with fuzzy search and
// returns the chosen one. The cursor starts on the default (first) entry.
func SelectSourcePrompt(label string, options []SourceOption) (SourceOption, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ .Name | cyan }} ({{ .URL | faint }})",
		Inactive: "  {{ .Name | faint }} ({{ .URL | faint }})",
		Selected: "▸ {{ .Name | green }}",
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     options,
		Templates: templates,
		Size:      minInt(10, len(options)),
		Searcher: func(input string, index int) bool {
			if index < 0 || index >= len(options) {
				return false
			}
			if input == "" {
				return true
			}
			opt := options[index]
			return fuzzy.MatchNormalizedFold(strings.TrimSpace(input), opt.Name) ||
				fuzzy.MatchNormalizedFold(strings.TrimSpace(input), opt.URL)
		},
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return SourceOption{}, fmt.Errorf("selection cancelled by user")
		}
		return SourceOption{}, err
	}

	return options[index], nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ValidateNonEmpty validates that input is not empty
func ValidateNonEmpty(input string) error {
	if len(input) == 0 {
		return errors.New("input cannot be empty")
	}
	return nil
}
