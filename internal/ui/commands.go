package ui

import (
	"context"

	"github.com/copydesk/copydesk/internal/quality"
	"github.com/copydesk/copydesk/internal/scanner"

	tea "github.com/charmbracelet/bubbletea"
)

// ScanFilesCmdWithPath returns a command that scans for content files in the given path.
func ScanFilesCmdWithPath(path string) tea.Cmd {
	return func() tea.Msg {
		files, err := scanner.FindContentFiles(path)
		return FilesFoundMsg{Files: files, Err: err}
	}
}

// ValidatorState holds the state needed for streaming validation.
// This allows the commands to be stateless functions.
type ValidatorState struct {
	Reports    <-chan quality.Report
	CancelFunc context.CancelFunc
	Paths      []string
}

// StartValidationCmd initializes the validator and returns the first report.
func StartValidationCmd(paths []string, opts quality.Options, state *ValidatorState) tea.Cmd {
	return func() tea.Msg {
		// Create a cancellable context
		ctx, cancel := context.WithCancel(context.Background())
		state.CancelFunc = cancel
		state.Paths = paths

		v := quality.New(opts)

		// Start validating and store the channel
		state.Reports = v.Stream(ctx, paths)

		// Get the first report
		report, ok := <-state.Reports
		if !ok {
			return AllValidatedMsg{Duplicates: quality.FindDuplicateExcerpts(paths)}
		}
		return ReportReceivedMsg{Report: report}
	}
}

// WaitForNextReportCmd waits for the next report from the channel.
func WaitForNextReportCmd(state *ValidatorState) tea.Cmd {
	return func() tea.Msg {
		if state.Reports == nil {
			return AllValidatedMsg{}
		}

		report, ok := <-state.Reports
		if !ok {
			return AllValidatedMsg{Duplicates: quality.FindDuplicateExcerpts(state.Paths)}
		}
		return ReportReceivedMsg{Report: report}
	}
}
