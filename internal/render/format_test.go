package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAnalysisClassifiesLines(t *testing.T) {
	got := FormatAnalysis("Summary:\n- one\n- two\nplain line")

	assert.Equal(t,
		"<p><strong>Summary:</strong></p><ul><li>one</li><li>two</li></ul><p>plain line</p>",
		got)
}

func TestFormatAnalysisHeadingMarkers(t *testing.T) {
	got := FormatAnalysis("## Outlook\nSteady improvement expected")
	assert.Contains(t, got, "<p><strong>Outlook</strong></p>")
	assert.Contains(t, got, "<p>Steady improvement expected</p>")
}

func TestFormatAnalysisBulletMarkers(t *testing.T) {
	got := FormatAnalysis("- dash\n* star\n• dot")
	assert.Equal(t, "<ul><li>dash</li><li>star</li><li>dot</li></ul>", got)
}

func TestFormatAnalysisSeparateBulletRuns(t *testing.T) {
	got := FormatAnalysis("- a\nbreak\n- b")
	assert.Equal(t, "<ul><li>a</li></ul><p>break</p><ul><li>b</li></ul>", got)
}

func TestFormatAnalysisDropsEmptyLinesAndTrims(t *testing.T) {
	got := FormatAnalysis("  hello  \n\n   \n- item  ")
	assert.Equal(t, "<p>hello</p><ul><li>item</li></ul>", got)
}

func TestFormatAnalysisDashWithoutSpaceIsPlainText(t *testing.T) {
	got := FormatAnalysis("-no space")
	assert.Equal(t, "<p>-no space</p>", got)
}

func TestFormatAnalysisPreformattedPassthrough(t *testing.T) {
	input := "<p>already formatted</p>"
	assert.Equal(t, input, FormatAnalysis(input))
}

func TestFormatAnalysisEscapesPlainText(t *testing.T) {
	got := FormatAnalysis("5 > 3 & rising")
	assert.Equal(t, "<p>5 &gt; 3 &amp; rising</p>", got)
}

func TestFormatAnalysisEmptyInput(t *testing.T) {
	assert.Empty(t, FormatAnalysis(""))
	assert.Empty(t, FormatAnalysis("\n\n  \n"))
}
