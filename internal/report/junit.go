package report

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// JUnitFormatter formats reports as JUnit XML for CI/CD integration.
// Only failing files are included as test cases.
type JUnitFormatter struct{}

// junitTestSuites is the root element for JUnit XML.
type junitTestSuites struct {
	XMLName   xml.Name         `xml:"testsuites"`
	Name      string           `xml:"name,attr"`
	Tests     int              `xml:"tests,attr"`
	Failures  int              `xml:"failures,attr"`
	TestSuite []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	TestCases []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// Format implements Formatter.
func (*JUnitFormatter) Format(report *Report) ([]byte, error) {
	failed := failedResults(report.Results)

	// Count totals
	totalTests := 0
	for _, r := range failed {
		totalTests += len(r.Issues)
	}

	suites := junitTestSuites{
		Name:     fmt.Sprintf("copydesk-%s-check", report.Kind),
		Tests:    totalTests,
		Failures: totalTests,
	}

	for _, r := range failed {
		suite := junitTestSuite{
			Name: r.File,
		}

		for _, issue := range r.Issues {
			suite.Tests++
			suite.Failures++
			suite.TestCases = append(suite.TestCases, junitTestCase{
				Name:      truncateForXML(issue, 200),
				ClassName: r.File,
				Failure: &junitFailure{
					Message: truncateForXML(issue, 200),
					Type:    "issue",
					Content: buildFailureContent(r),
				},
			})
		}

		suites.TestSuite = append(suites.TestSuite, suite)
	}

	// If nothing failed, create an empty test suite to indicate success
	if len(suites.TestSuite) == 0 {
		suites.TestSuite = append(suites.TestSuite, junitTestSuite{
			Name:  "all-posts",
			Tests: 0,
		})
	}

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), data...), nil
}

// buildFailureContent creates detailed failure content.
func buildFailureContent(r FileResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Words: %d\n", r.WordCount)
	fmt.Fprintf(&b, "H2: %d, H3: %d\n", r.H2Count, r.H3Count)
	if r.Keyword != "" {
		fmt.Fprintf(&b, "Keyword: %s (%.2f%%)\n", r.Keyword, r.Density)
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings: %s\n", strings.Join(r.Warnings, "; "))
	}
	return b.String()
}

// truncateForXML truncates a string and ensures it's safe for XML.
func truncateForXML(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
