// Package content holds the portfolio copy shown on the page.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("content: invalid")

type Content struct {
	Name       string     `yaml:"name"`
	Headline   string     `yaml:"headline"`
	About      string     `yaml:"about"`
	Education  []Entry    `yaml:"education"`
	Career     []Entry    `yaml:"career"`
	Skills     []SkillSet `yaml:"skills"`
	Projects   []Project  `yaml:"projects"`
	Footer     string     `yaml:"footer"`
	ResumePath string     `yaml:"resume_path"`
}

// Entry is one school or job in a career panel.
type Entry struct {
	Title  string   `yaml:"title"`
	Org    string   `yaml:"org"`
	Period string   `yaml:"period"`
	Notes  []string `yaml:"notes"`
}

// Lines lists the entry's text in display order; each line decodes on its
// own delay.
func (e Entry) Lines() []string {
	lines := []string{e.Title, e.Org, e.Period}
	return append(lines, e.Notes...)
}

type SkillSet struct {
	Key         string   `yaml:"key"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icons       []string `yaml:"icons"` // tools shown in the sliding strip
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Images       []string `yaml:"images"`
	Technologies []string `yaml:"technologies"`
	PrimaryLink  string   `yaml:"primary_link"`
	PrimaryText  string   `yaml:"primary_text"`
	GithubLink   string   `yaml:"github_link"`
}

// Validate checks every section has what the templates render.
func (c *Content) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "name is empty")
	}
	if len(c.Education) == 0 {
		problems = append(problems, "no education entries")
	}
	if len(c.Career) == 0 {
		problems = append(problems, "no career entries")
	}
	for i, e := range append(append([]Entry(nil), c.Education...), c.Career...) {
		if e.Title == "" {
			problems = append(problems, fmt.Sprintf("entry %d has no title", i))
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			problems = append(problems, fmt.Sprintf("project %d has no title", i))
		}
		if p.PrimaryLink == "" {
			problems = append(problems, fmt.Sprintf("project %q has no link", p.Title))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Parse decodes YAML over the defaults, so a file only needs the fields
// it changes.
func Parse(data []byte) (*Content, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("content: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and validates a content file.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: load %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return c, nil
}

// Store holds the current content for concurrent readers.
type Store struct {
	cur atomic.Pointer[Content]
}

// NewStore returns a store holding c, or the defaults when c is nil.
func NewStore(c *Content) *Store {
	if c == nil {
		c = Default()
	}
	s := &Store{}
	s.cur.Store(c)
	return s
}

func (s *Store) Get() *Content { return s.cur.Load() }

func (s *Store) Set(c *Content) { s.cur.Store(c) }
