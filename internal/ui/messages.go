package ui

import "github.com/copydesk/copydesk/internal/quality"

// FilesFoundMsg is sent when content files have been discovered.
type FilesFoundMsg struct {
	Err   error
	Files []string
}

// ReportReceivedMsg is sent when a single post has been validated.
type ReportReceivedMsg struct {
	Report quality.Report
}

// AllValidatedMsg is sent when all posts have been validated.
type AllValidatedMsg struct {
	Duplicates map[string][]string
}
