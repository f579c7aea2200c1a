package news

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store reads and writes article Markdown files in one directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// List parses every .md file in the store. Files without a valid
// frontmatter block are skipped with a log line, not fatal.
func (s *Store) List() ([]*Article, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read news dir: %w", err)
	}

	var articles []*Article
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		article, err := s.read(path)
		if err != nil {
			log.Printf("news: skipping %s: %v", entry.Name(), err)
			continue
		}
		articles = append(articles, article)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
	return articles, nil
}

// Get returns the stored article whose frontmatter url matches.
func (s *Store) Get(url string) (*Article, error) {
	articles, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		if a.URL == url {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no stored article for %s", url)
}

// Save writes the article, reusing its existing path when it was loaded
// from disk and deriving a slug filename otherwise.
func (s *Store) Save(article *Article) error {
	if article.URL == "" {
		return fmt.Errorf("article has no url")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create news dir: %w", err)
	}

	path := article.Path
	if path == "" {
		path = filepath.Join(s.dir, article.Slug()+".md")
	}

	data, err := article.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write article: %w", err)
	}

	article.Path = path
	return nil
}

func (s *Store) read(path string) (*Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	article, err := ParseArticle(string(content))
	if err != nil {
		return nil, err
	}
	article.Path = path
	return article, nil
}

// Update re-fetches every stored article by its frontmatter url and
// rewrites the body. Fetch failures leave the file as-is and are
// reported in the returned count.
func (s *Store) Update(fetcher *Fetcher) (updated, failed int, err error) {
	articles, err := s.List()
	if err != nil {
		return 0, 0, err
	}

	for _, article := range articles {
		fresh, err := fetcher.FetchURL(article.URL)
		if err != nil {
			log.Printf("news: update failed for %s: %v", article.URL, err)
			failed++
			continue
		}

		article.Body = fresh.Body
		if fresh.Title != "" {
			article.Title = fresh.Title
		}
		if err := s.Save(article); err != nil {
			log.Printf("news: save failed for %s: %v", article.URL, err)
			failed++
			continue
		}
		updated++
	}

	return updated, failed, nil
}
