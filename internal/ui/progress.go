package ui

import (
	"github.com/schollz/progressbar/v3"
)

// Spinner wraps progressbar/v3 for unknown-length operations such as a
// pip run whose duration depends on the network.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// NewSpinner creates an indeterminate spinner with a description
func NewSpinner(description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(10),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &Spinner{bar: bar}
}

// Tick advances the spinner one frame
func (s *Spinner) Tick() error {
	return s.bar.Add(1)
}

// Describe changes the description of the spinner
func (s *Spinner) Describe(description string) {
	s.bar.Describe(description)
}

// Finish stops and clears the spinner
func (s *Spinner) Finish() error {
	if err := s.bar.Finish(); err != nil {
		return err
	}
	return s.bar.Clear()
}
