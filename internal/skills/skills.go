// Package skills discovers skill metadata for the assistant. A skill is
// a directory holding a SKILL.md whose YAML frontmatter names and
// describes it; the Markdown body carries the instructions.
package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SkillFile is the expected filename inside each skill directory.
const SkillFile = "SKILL.md"

// Skill is one discovered skill.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Directory   string `json:"directory"`
	Content     string `json:"content"`
}

type metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// List discovers all skills under dir, sorted by name. Directories
// without a parseable SKILL.md are skipped. A missing root dir yields an
// empty list.
func List(dir string) ([]*Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read skills dir: %w", err)
	}

	var skills []*Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		skill, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		skills = append(skills, skill)
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})
	return skills, nil
}

// Load reads one skill directory. The directory name stands in for a
// missing frontmatter name.
func Load(dir string) (*Skill, error) {
	content, err := os.ReadFile(filepath.Join(dir, SkillFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SkillFile, err)
	}

	meta, body, err := parseFrontmatter(string(content))
	if err != nil {
		return nil, err
	}

	if meta.Name == "" {
		meta.Name = filepath.Base(dir)
	}

	return &Skill{
		Name:        meta.Name,
		Description: meta.Description,
		Directory:   dir,
		Content:     body,
	}, nil
}

func parseFrontmatter(content string) (*metadata, string, error) {
	if !strings.HasPrefix(content, "---") {
		return nil, "", fmt.Errorf("missing frontmatter")
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return nil, "", fmt.Errorf("unterminated frontmatter")
	}

	var meta metadata
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
		return nil, "", fmt.Errorf("parse frontmatter: %w", err)
	}

	return &meta, strings.TrimSpace(parts[2]), nil
}
