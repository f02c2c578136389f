package pdf

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"impactlens/internal/domain"
)

type block struct {
	Level int
	Text  string
	Items []string
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 11pt; color: #1f2937; }
h1 { font-size: 20pt; color: #0b3d2e; border-bottom: 2px solid #0b3d2e; padding-bottom: 4pt; }
h2 { font-size: 15pt; color: #0b3d2e; }
h3 { font-size: 12pt; }
.meta { color: #6b7280; font-size: 9pt; }
</style></head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Report {{.ID}} &middot; {{.Created}}</p>
{{range .Blocks}}{{if eq .Level 1}}<h2>{{.Text}}</h2>
{{else if eq .Level 2}}<h3>{{.Text}}</h3>
{{else if .Items}}<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
{{else}}<p>{{.Text}}</p>
{{end}}{{end}}</body></html>
`))

// ReportHTML lays out report text as a printable page. Markdown style headings
// and bullet lists are recognised; everything else becomes paragraphs, and
// image placeholders are printed as written.
func ReportHTML(r domain.Report) (string, error) {
	data := struct {
		Title   string
		ID      string
		Created string
		Blocks  []block
	}{
		Title:   "ESG Report",
		ID:      r.ID,
		Created: r.CreatedAt.UTC().Format(time.RFC1123),
		Blocks:  parseBlocks(r.Content),
	}
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func parseBlocks(content string) []block {
	var (
		out  []block
		para []string
		list []string
	)
	flush := func() {
		if len(para) > 0 {
			out = append(out, block{Text: strings.Join(para, " ")})
			para = nil
		}
		if len(list) > 0 {
			out = append(out, block{Items: list})
			list = nil
		}
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
			flush()
			level := 1
			if strings.HasPrefix(line, "###") {
				level = 2
			}
			out = append(out, block{Level: level, Text: strings.TrimSpace(strings.TrimLeft(line, "#"))})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			if len(para) > 0 {
				out = append(out, block{Text: strings.Join(para, " ")})
				para = nil
			}
			list = append(list, strings.TrimSpace(line[2:]))
		default:
			if len(list) > 0 {
				out = append(out, block{Items: list})
				list = nil
			}
			para = append(para, line)
		}
	}
	flush()
	return out
}
