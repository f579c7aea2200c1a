package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, dir, content string) {
	t.Helper()
	path := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(path, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(path, SkillFile), []byte(content), 0o644))
}

func TestListSkills(t *testing.T) {
	root := t.TempDir()

	writeSkill(t, root, "watchlist-review", `---
name: watchlist-review
description: Review the watchlist and flag stale entries
---

Walk the watchlist and check each thesis.
`)
	writeSkill(t, root, "earnings-prep", `---
name: earnings-prep
description: Prepare notes ahead of an earnings call
---

Collect recent news and price action.
`)

	skills, err := List(root)
	require.NoError(t, err)
	require.Len(t, skills, 2)

	// Sorted by name.
	assert.Equal(t, "earnings-prep", skills[0].Name)
	assert.Equal(t, "watchlist-review", skills[1].Name)
	assert.Contains(t, skills[1].Content, "Walk the watchlist")
}

func TestListSkipsUnparseable(t *testing.T) {
	root := t.TempDir()

	writeSkill(t, root, "good", "---\nname: good\ndescription: ok\n---\nbody")
	writeSkill(t, root, "broken", "no frontmatter at all")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty-dir"), 0o755))

	skills, err := List(root)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "good", skills[0].Name)
}

func TestLoadFallsBackToDirName(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "price-alerts", "---\ndescription: alerting\n---\nbody")

	skill, err := Load(filepath.Join(root, "price-alerts"))
	require.NoError(t, err)
	assert.Equal(t, "price-alerts", skill.Name)
	assert.Equal(t, "alerting", skill.Description)
}

func TestListMissingDir(t *testing.T) {
	skills, err := List(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, skills)
}
