// Package renderer renders reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/ytd"
)

//go:embed *.md
var templates embed.FS

// RenderOptions holds configuration for rendering a year-to-date report.
type RenderOptions struct {
	SkipTransactions bool // Do not render the reverted transactions section.
}

// RenderYTD renders the year-to-date report to a markdown string.
func RenderYTD(r *ytd.YTDReport, opts RenderOptions) string {
	partials := map[string]string{
		"ytd_summary":   "ytd_summary.md",
		"ytd_positions": "ytd_positions.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipTransactions {
		partials["ytd_transactions"] = ""
	} else {
		partials["ytd_transactions"] = "ytd_transactions.md"
	}
	return renderTemplate("ytd", "ytd.md", partials, r)
}

// RenderPosition renders a position held on a given day to a markdown string.
func RenderPosition(title string, p *ytd.Position) string {
	data := struct {
		Title    string
		Position *ytd.Position
	}{title, p}
	return renderTemplate("position", "position.md", nil, data)
}

var funcs = template.FuncMap{
	"holdings": holdings,
	"ticker":   ticker,
	"quantity": quantity,
}

// holdingRow is a security held at either end of the report range.
type holdingRow struct {
	Security ytd.Security
	Initial  ytd.Quantity
	Current  ytd.Quantity
}

func holdings(r *ytd.YTDReport) []holdingRow {
	var rows []holdingRow
	for _, sec := range ytd.Securities() {
		initial, current := r.Initial.SecurityPosition(sec), r.Current.SecurityPosition(sec)
		if initial.IsZero() && current.IsZero() {
			continue
		}
		rows = append(rows, holdingRow{sec, initial, current})
	}
	return rows
}

func ticker(tx ytd.Transaction) string {
	if sec, ok := tx.Security(); ok {
		return sec.Ticker()
	}
	return ""
}

func quantity(tx ytd.Transaction) string {
	if tx.Type().HasQuantity() {
		return tx.Quantity().String()
	}
	return ""
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
