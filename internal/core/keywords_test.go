package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeywordsIsCopy(t *testing.T) {
	k := DefaultKeywords()
	k.Domains[0] = "mutated"

	assert.Equal(t, "healthcare", DefaultKeywords().Domains[0])
}

func TestMergeKeepsOrderAndDedups(t *testing.T) {
	base := Keywords{Domains: []string{"finance", "social media"}}
	got := base.Merge(Keywords{Domains: []string{"FINANCE", "social  media", "logistics", "", "logistics"}})

	assert.Equal(t, []string{"finance", "social media", "logistics"}, got.Domains)
	assert.Equal(t, []string{"finance", "social media"}, base.Domains)
}

func TestParseKeywords(t *testing.T) {
	k, err := ParseKeywords([]byte("technical:\n  - kubernetes\ndomains:\n  - logistics\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"kubernetes"}, k.Technical)
	assert.Equal(t, []string{"logistics"}, k.Domains)

	_, err = ParseKeywords([]byte("technical: [unterminated"))
	assert.Error(t, err)
}

func TestLoadKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("creative:\n  - haiku\n"), 0o644))

	k, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"haiku"}, k.Creative)

	_, err = LoadKeywords(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMatcher(t *testing.T) {
	m := newMatcher([]string{"app", "mobile app", "c++"}, false)

	tests := []struct {
		input string
		match bool
		find  string
	}{
		{"an App for me", true, "app"},
		{"apple pie", false, ""},
		{"a Mobile\tApp", true, "mobile app"},
		{"learning c++ today", true, "c++"},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.match, m.Match(tt.input))
			assert.Equal(t, tt.find, m.Find(tt.input))
		})
	}
}

func TestAnchoredMatcher(t *testing.T) {
	m := newMatcher([]string{"how", "is"}, true)

	assert.True(t, m.Match("  How much"))
	assert.False(t, m.Match("this is it"))
	assert.False(t, m.Match("however"))
}

func TestEmptyMatcher(t *testing.T) {
	m := newMatcher(nil, false)
	assert.False(t, m.Match("anything"))
	assert.Empty(t, m.Find("anything"))
}
