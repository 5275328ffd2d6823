package cssom_test

import (
	"testing"

	"github.com/npillmayer/scenecss/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificityCalculation(t *testing.T) {
	tests := []struct {
		selector string
		expected cssom.Specificity
	}{
		{"*", cssom.Specificity{0, 0, 0}},
		{"Rectangle", cssom.Specificity{0, 0, 1}},
		{"Group Rectangle", cssom.Specificity{0, 0, 2}},
		{".root", cssom.Specificity{0, 1, 0}},
		{"Text.label", cssom.Specificity{0, 1, 1}},
		{"#rectangle", cssom.Specificity{1, 0, 0}},
		{"#a.b:hover", cssom.Specificity{1, 2, 0}},
		{".root > Group #t", cssom.Specificity{1, 1, 1}},
	}
	for _, tt := range tests {
		sel, err := cssom.ParseSelector(tt.selector)
		require.NoError(t, err, tt.selector)
		assert.Equal(t, tt.expected, sel.Specificity(), "specificity of %q", tt.selector)
	}
}

func TestSpecificityComparison(t *testing.T) {
	assert.Equal(t, 0, cssom.Specificity{0, 1, 0}.Compare(cssom.Specificity{0, 1, 0}))
	assert.Equal(t, -1, cssom.Specificity{0, 0, 9}.Compare(cssom.Specificity{0, 1, 0}))
	assert.Equal(t, 1, cssom.Specificity{1, 0, 0}.Compare(cssom.Specificity{0, 9, 9}))
}

func TestIllegalSelectors(t *testing.T) {
	for _, s := range []string{"", "> Text", "Group >", "#", "a#b#c", "a[href]", "Text."} {
		_, err := cssom.ParseSelector(s)
		assert.Error(t, err, "selector %q", s)
	}
}

func TestSelectorMatching(t *testing.T) {
	rect := newNode("Rectangle", "Shape", "Node").withID("rectangle").withClasses("big")
	text := newNode("Text", "Shape", "Node").withID("text").withPseudos("hover")
	inner := newNode("Group", "Parent", "Node").add(text)
	newNode("Group", "Parent", "Node").withClasses("root").add(rect, inner)
	tests := []struct {
		selector string
		node     *node
		matches  bool
	}{
		{"*", rect, true},
		{"Rectangle", rect, true},
		{"rectangle", rect, true}, // type names are case-insensitive
		{"Shape", rect, true},     // type ancestry chain
		{"Text", rect, false},
		{"#rectangle", rect, true},
		{"#text", rect, false},
		{".big", rect, true},
		{"Rectangle.big.small", rect, false},
		{".root Rectangle", rect, true},
		{".root > Rectangle", rect, true},
		{".root > Text", text, false},
		{".root Text", text, true},
		{".root > Group > Text", text, true},
		{"Text:hover", text, true},
		{"Text:pressed", text, false},
		{".root .root Text", text, false},
	}
	for _, tt := range tests {
		sel, err := cssom.ParseSelector(tt.selector)
		require.NoError(t, err, tt.selector)
		assert.Equal(t, tt.matches, sel.Matches(tt.node), "%q matching %v", tt.selector, tt.node.types)
	}
}

func TestSelectorGroup(t *testing.T) {
	sels, err := cssom.ParseSelectorGroup("Rectangle, Text")
	require.NoError(t, err)
	require.Len(t, sels, 2)
	assert.Equal(t, "Text", sels[1].String())
	_, err = cssom.ParseSelectorGroup("Rectangle, ")
	assert.Error(t, err)
}
