// Package renderer renders budget reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/budget"
)

//go:embed *.md
var templates embed.FS

// RenderOptions holds configuration for rendering a report.
type RenderOptions struct {
	SkipStatements bool // Do not render the statements section.
}

// Report renders the balances, statements and spend chart of the book to a
// markdown string.
func Report(book *budget.Book, opts RenderOptions) string {
	partials := map[string]string{
		"report_balances": "report_balances.md",
		"report_chart":    "report_chart.md",
	}
	// An empty file name results in an empty template.
	if !opts.SkipStatements {
		partials["report_statements"] = "report_statements.md"
	} else {
		partials["report_statements"] = ""
	}
	return renderTemplate("report", "report.md", partials, NewBudget(book))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
