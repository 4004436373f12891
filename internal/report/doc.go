// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Plain text for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub-flavored Markdown with tables and mermaid charts
//
// Report data lives in the model package; writers only render it. Every
// writer implements Writer, so commands pick one with NewWriter and stay
// format-agnostic.
package report
