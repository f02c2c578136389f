package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impactlens/internal/domain"
)

func TestParseBlocks(t *testing.T) {
	content := "# Summary\nEmissions fell.\nStill high.\n\n### Actions\n- cut flaring\n- buy RECs\nDone."
	got := parseBlocks(content)
	require.Len(t, got, 5)
	assert.Equal(t, block{Level: 1, Text: "Summary"}, got[0])
	assert.Equal(t, block{Text: "Emissions fell. Still high."}, got[1])
	assert.Equal(t, block{Level: 2, Text: "Actions"}, got[2])
	assert.Equal(t, []string{"cut flaring", "buy RECs"}, got[3].Items)
	assert.Equal(t, "Done.", got[4].Text)
}

func TestReportHTMLEscapesAndKeepsPlaceholders(t *testing.T) {
	r := domain.Report{
		ID:        "r1",
		Content:   "<script>alert(1)</script>\n\n{{IMAGE:emissions_trajectory}}",
		CreatedAt: time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC),
	}
	html, err := ReportHTML(r)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "{{IMAGE:emissions_trajectory}}")
	assert.Contains(t, html, "Report r1")
}

func TestRenderPDFRejectsEmpty(t *testing.T) {
	r := NewRenderer(Config{})
	defer r.Close()
	_, err := r.RenderPDF(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
