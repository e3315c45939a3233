package acctreports

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// CsvToList splits a comma separated list. An empty string gives an empty list.
//
// Items are not trimmed: "a, b" gives "a" and " b", and "," gives two empty items.
func CsvToList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// ReadList reads one item per line, skipping blank lines.
func ReadList(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	return items, nil
}

// ReadListFile is ReadList on a named file.
func ReadListFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadList(f)
}
