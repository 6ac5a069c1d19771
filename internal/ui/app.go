package ui

import (
	"fmt"

	"github.com/copydesk/copydesk/internal/quality"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// STATE MACHINE
// =============================================================================

type appState int

const (
	stateScanning   appState = iota // Finding content files
	stateValidating                 // Running quality checks
	stateResults                    // Showing results (list view)
)

// =============================================================================
// FILTER TYPES
// =============================================================================

type filterType int

const (
	filterAll      filterType = iota // Failed + warnings
	filterFailed                     // Failed only
	filterWarnings                   // Passing posts with warnings
	filterPassed                     // Clean passes
)

const filterCount = 4

func (f filterType) String() string {
	switch f {
	case filterAll:
		return "All Flagged"
	case filterFailed:
		return "Failed"
	case filterWarnings:
		return "Warnings"
	case filterPassed:
		return "Passed"
	default:
		return "Unknown"
	}
}

func (f filterType) Next() filterType {
	return (f + 1) % filterCount
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the main application model.
type Model struct {
	// State
	state    appState
	quitting bool
	err      error

	// Data
	files   []string
	reports []quality.Report

	// Categorized reports
	passedReports []quality.Report
	warnedReports []quality.Report
	failedReports []quality.Report

	// Batch-level findings
	duplicates map[string][]string

	// Progress tracking
	validated int

	// Filter
	filter filterType

	// Components
	spinner spinner.Model
	list    list.Model
	help    help.Model
	keys    KeyMap

	// Validator state (for async operations)
	validatorState ValidatorState
	opts           quality.Options

	// UI state
	width      int
	height     int
	showHelp   bool
	showDetail bool

	// Config
	path string
}

// New creates and returns a new Model for the given path.
func New(path string, opts quality.Options) Model {
	if path == "" {
		path = "."
	}
	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle()

	// Initialize help
	h := help.New()

	// Initialize keys
	k := DefaultKeyMap()

	// Initialize list with empty items (will be populated later)
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = SelectedStyle
	delegate.Styles.SelectedDesc = StatusStyle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Content Quality Results"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false) // We use our own help
	l.Styles.Title = TitleStyle

	return Model{
		state:      stateScanning,
		spinner:    s,
		list:       l,
		help:       h,
		keys:       k,
		filter:     filterAll,
		opts:       opts,
		path:       path,
		showDetail: true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, ScanFilesCmdWithPath(m.path))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve space for header, summary, and detail panel
		listHeight := max(msg.Height-12, 5)
		m.list.SetSize(msg.Width, listHeight)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FilesFoundMsg:
		return m.handleFilesFound(msg)

	case ReportReceivedMsg:
		return m.handleReportReceived(msg)

	case AllValidatedMsg:
		return m.handleAllValidated(msg)
	}

	// Pass other messages to list if in results state
	if m.state == stateResults {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys that work in any state
	if key.Matches(msg, m.keys.Quit) {
		if m.validatorState.CancelFunc != nil {
			m.validatorState.CancelFunc()
		}
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	// State-specific keys
	if m.state == stateResults {
		if key.Matches(msg, m.keys.Filter) {
			m.filter = m.filter.Next()
			m.updateListItems()
			return m, nil
		}

		if key.Matches(msg, m.keys.Detail) {
			m.showDetail = !m.showDetail
			return m, nil
		}

		// Pass navigation keys to list
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleFilesFound(msg FilesFoundMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.state = stateResults
		return m, nil
	}
	m.files = msg.Files

	if len(m.files) == 0 {
		m.state = stateResults
		return m, nil
	}
	m.state = stateValidating
	return m, StartValidationCmd(m.files, m.opts, &m.validatorState)
}

func (m *Model) handleReportReceived(msg ReportReceivedMsg) (tea.Model, tea.Cmd) {
	m.reports = append(m.reports, msg.Report)
	m.validated++

	// Categorize the report
	switch {
	case !msg.Report.Passed:
		m.failedReports = append(m.failedReports, msg.Report)
	case len(msg.Report.Warnings) > 0:
		m.warnedReports = append(m.warnedReports, msg.Report)
	default:
		m.passedReports = append(m.passedReports, msg.Report)
	}

	return m, WaitForNextReportCmd(&m.validatorState)
}

func (m *Model) handleAllValidated(msg AllValidatedMsg) (tea.Model, tea.Cmd) {
	m.state = stateResults
	m.validatorState.Reports = nil
	m.duplicates = msg.Duplicates
	m.updateListItems()
	return m, nil
}

// updateListItems updates the list with filtered reports.
func (m *Model) updateListItems() {
	reportItems := ReportsToItems(m.getFilteredReports())
	items := make([]list.Item, len(reportItems))
	for i, item := range reportItems {
		items[i] = item
	}
	m.list.SetItems(items)
}

// getFilteredReports returns reports based on current filter.
func (m *Model) getFilteredReports() []quality.Report {
	switch m.filter {
	case filterAll:
		// Everything that needs attention: failed + warned
		var all []quality.Report
		all = append(all, m.failedReports...)
		all = append(all, m.warnedReports...)
		return all
	case filterFailed:
		return m.failedReports
	case filterWarnings:
		return m.warnedReports
	case filterPassed:
		return m.passedReports
	default:
		return nil
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var s string

	// Header
	s += TitleStyle.Render("Copydesk - Content Quality")
	s += "\n\n"

	// Error state
	if m.err != nil {
		s += ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		s += "\n"
		s += HelpStyle.Render("Press q to quit")
		return s
	}

	// State-specific view
	switch m.state {
	case stateScanning:
		s += m.spinner.View() + " Scanning for content files..."

	case stateValidating:
		s += m.renderValidatingProgress()

	case stateResults:
		s += m.renderResults()
	}

	// Help
	if m.showHelp {
		s += "\n\n" + m.help.View(m.keys)
	} else {
		s += "\n\n" + m.renderShortHelp()
	}

	return s
}

func (m Model) renderValidatingProgress() string {
	var s string

	s += m.spinner.View() + fmt.Sprintf(" Validating posts... %d/%d", m.validated, len(m.files))
	s += "\n\n"

	// Live category counts
	s += fmt.Sprintf("  %s  %s  %s",
		SuccessStyle.Render(fmt.Sprintf("✓ %d passed", len(m.passedReports))),
		WarningStyle.Render(fmt.Sprintf("⚠ %d warnings", len(m.warnedReports))),
		ErrorStyle.Render(fmt.Sprintf("✗ %d failed", len(m.failedReports))))

	return s
}

func (m Model) renderResults() string {
	var s string

	// Summary line
	s += fmt.Sprintf("Scanned %d file(s), validated %d post(s)", len(m.files), len(m.reports))
	s += "\n\n"

	// Category summary
	s += fmt.Sprintf("%s | %s | %s\n",
		SuccessStyle.Render(fmt.Sprintf("✓ %d passed", len(m.passedReports))),
		WarningStyle.Render(fmt.Sprintf("⚠ %d warnings", len(m.warnedReports))),
		ErrorStyle.Render(fmt.Sprintf("✗ %d failed", len(m.failedReports))))

	if len(m.duplicates) > 0 {
		s += MutedStyle.Render(fmt.Sprintf("◈ %d duplicate excerpt group(s)", len(m.duplicates)))
		s += "\n"
	}
	s += "\n"

	// Check if everything passed cleanly
	if len(m.failedReports) == 0 && len(m.warnedReports) == 0 && len(m.duplicates) == 0 {
		s += SuccessStyle.Render("All posts pass quality checks!")
		return s
	}

	// Filter indicator
	filteredCount := len(m.getFilteredReports())
	s += fmt.Sprintf("Filter: %s (%d/%d)\n\n",
		SelectedStyle.Render(m.filter.String()),
		filteredCount,
		len(m.reports))

	// List view
	s += m.list.View()

	// Detail panel for selected item
	if !m.showDetail {
		s += "\n" + DetailNoteStyle.Render("details hidden (enter to show)")
		return s
	}
	if selected := m.list.SelectedItem(); selected != nil {
		if item, ok := selected.(ReportItem); ok {
			s += "\n" + item.DetailView()
		}
	}

	return s
}

func (Model) renderShortHelp() string {
	return HelpStyle.Render("↑/↓ navigate • f filter • enter details • ? help • q quit")
}
