package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the manual stays in sync with itself: every topic
// listed in readme.md loads, and every .md file is listed in readme.md.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("cannot read readme topic: %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q exists but is not listed in readme.md", topic)
		}
	}
}

// TestTopicsStartWithHeading parses every topic as markdown and checks it
// opens with a level-1 heading, which the terminal renderer relies on.
func TestTopicsStartWithHeading(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error = %v", err)
	}
	md := goldmark.New()
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) unexpected error = %v", topic, err)
		}
		source := []byte(content)
		doc := md.Parser().Parse(text.NewReader(source))
		first := doc.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
		}
	}
}

func TestGetTopicsStar(t *testing.T) {
	doc, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error = %v", err)
	}
	for _, want := range []string{"# Getting started", "# Time tracking", "# Finances", "# Remote sync"} {
		if !strings.Contains(doc, want) {
			t.Errorf("GetTopics(*) missing %q", want)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("GetTopic() expected an error for an unknown topic")
	}
}
