// Package docs holds the user documentation of the wallet command.
//
// Each topic is a markdown page whose first line is its title. The readme
// page introduces the documentation and is not a topic itself.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.md
var pages embed.FS

const (
	// All stands for every topic.
	All = "*"

	readme = "readme"
)

// Topic is a documentation page.
type Topic struct {
	Name  string
	Title string
}

// Topics returns the documentation topics sorted by name.
func Topics() ([]Topic, error) {
	entries, err := fs.ReadDir(pages, ".")
	if err != nil {
		return nil, err
	}
	var topics []Topic
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || name == readme {
			continue
		}
		content, err := page(name)
		if err != nil {
			return nil, err
		}
		topics = append(topics, Topic{Name: name, Title: title(content)})
	}
	return topics, nil
}

// Names returns the topic names, for completion.
func Names() []string {
	topics, _ := Topics()
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	return names
}

// Read returns the named topics one after the other. All expands to every
// topic.
func Read(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == All {
			content, err := Read(Names()...)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			continue
		}
		content, err := page(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Index returns the readme page followed by the list of topics.
func Index() (string, error) {
	topics, err := Topics()
	if err != nil {
		return "", err
	}
	intro, err := page(readme)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n## Topics\n\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "* `%s`: %s\n", t.Name, t.Title)
	}
	return b.String(), nil
}

func page(name string) (string, error) {
	content, err := pages.ReadFile(path.Clean(name) + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// title returns the first heading of content, without the markup.
func title(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	return strings.TrimSpace(strings.TrimLeft(first, "#"))
}
