package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - category: Salary
    keywords: ["jobr payrol", "salary"]
  - category: Groceries
    keywords: ["market"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Salary", rules[0].Category)
	assert.Equal(t, []string{"jobr payrol", "salary"}, rules[0].Keywords)
	assert.Equal(t, "Groceries", rules[1].Category)
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRulesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [unclosed"), 0600))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestLoadRulesEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []\n"), 0600))

	_, err := LoadRules(path)
	assert.Error(t, err)
}
