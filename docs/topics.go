// Package docs holds the user documentation of acr, one markdown file per topic.
package docs

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic listing every other topic.
const index = "readme"

// ErrUnknownTopic is returned for a topic without documentation.
var ErrUnknownTopic = errors.New("unknown topic")

// GetTopic returns the content of a documentation topic.
//
// The "*" topic is every topic, and the empty topic is the index.
func GetTopic(topic string) (string, error) {
	switch topic {
	case "*":
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	case "":
		topic = index
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w %q", ErrUnknownTopic, topic)
		}
		return "", fmt.Errorf("topic %q: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple topics separated by a blank line.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted names of all topics, the index excepted.
func GetAllTopics() ([]string, error) {
	entries, err := docs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if e.IsDir() || !ok || name == index {
			continue
		}
		topics = append(topics, name)
	}
	slices.Sort(topics)
	return topics, nil
}
