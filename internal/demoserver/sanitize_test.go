package demoserver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePreview(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		contains    []string
		notContains []string
	}{
		{
			name:        "removes scripts and styles",
			in:          `<div><script>alert(1)</script><style>p{}</style><p>keep</p><noscript>x</noscript></div>`,
			contains:    []string{"<p>keep</p>"},
			notContains: []string{"<script", "<style", "<noscript", "alert(1)"},
		},
		{
			name:        "removes embedded content",
			in:          `<iframe src="https://evil"></iframe><embed src="a.swf"/><object data="b"></object><span>ok</span>`,
			contains:    []string{"<span>ok</span>"},
			notContains: []string{"<iframe", "<embed", "<object"},
		},
		{
			name:        "strips event handlers",
			in:          `<img src="a.png" onerror="steal()" ONLOAD="x()" alt="a"/>`,
			contains:    []string{`src="a.png"`, `alt="a"`},
			notContains: []string{"onerror", "steal", "ONLOAD", "onload"},
		},
		{
			name:        "disables links",
			in:          `<a href="https://example.com" onmouseover="x()">go</a><a name="anchor">no href</a>`,
			contains:    []string{`href="https://example.com" onclick="return false;"`, `<a name="anchor">no href</a>`},
			notContains: []string{"onmouseover"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SanitizePreview(tt.in)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestSanitizePreview_CannedFragment(t *testing.T) {
	out, err := SanitizePreview(previewFragment)
	require.NoError(t, err)

	assert.Contains(t, out, "Demo mode")
	assert.Contains(t, out, "¥299.00")
	assert.Contains(t, out, `onclick="return false;"`)
	assert.False(t, strings.HasPrefix(out, "<body"), "expected inner html only")
}
