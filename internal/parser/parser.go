package parser

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gubarz/cheatpick/internal/cheat"
)

var (
	titleRegex     = regexp.MustCompile(`^#\s+(.+)$`)
	sectionRegex   = regexp.MustCompile(`^#{2,6}\s+(.+)$`)
	tagLineRegex   = regexp.MustCompile(`^#[^#\s]\S*(\s+#[^#\s]\S*)*\s*$`)
	fileTagsRegex  = regexp.MustCompile(`^%\s*(.+)$`)
	codeBlockStart = regexp.MustCompile("^```(\\w*)\\s*$")
	codeBlockEnd   = regexp.MustCompile("^```\\s*$")
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Parser turns Markdown cheat files into catalog records
type Parser struct {
	records []*cheat.Record
}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseDirectory recursively parses all markdown files in lexical order
func (p *Parser) ParseDirectory(dir string) (*cheat.Catalog, error) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".md") {
			if err := p.parseFile(path); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cheat.NewCatalog(p.records), nil
}

// ParseSingleFile parses a single markdown file
func (p *Parser) ParseSingleFile(path string) (*cheat.Catalog, error) {
	if err := p.parseFile(path); err != nil {
		return nil, err
	}
	return cheat.NewCatalog(p.records), nil
}

// ParsePath parses path as a directory or a single file
func (p *Parser) ParsePath(path string) (*cheat.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return p.ParseDirectory(path)
	}
	return p.ParseSingleFile(path)
}

func (p *Parser) parseFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	p.ParseLines(path, lines)
	return nil
}

// ParseLines parses the lines of one cheat file. Layout:
//
//	# Title
//	% tag, tag
//	## Name
//	#tag/value #tag/value
//	```
//	command <placeholder>
//	```
func (p *Parser) ParseLines(path string, lines []string) {
	var title, name string
	var fileTags, sectionTags []string
	var inCodeBlock, shellBlock bool
	var block []string

	for _, line := range lines {
		if inCodeBlock {
			if codeBlockEnd.MatchString(line) {
				inCodeBlock = false
				if shellBlock {
					p.addRecord(path, title, name, fileTags, sectionTags, block)
				}
				continue
			}
			block = append(block, line)
			continue
		}

		if matches := codeBlockStart.FindStringSubmatch(line); matches != nil {
			inCodeBlock = true
			shellBlock = isShellLang(matches[1])
			block = nil
			continue
		}

		if matches := sectionRegex.FindStringSubmatch(line); matches != nil {
			name = strings.TrimSpace(matches[1])
			sectionTags = nil
			continue
		}

		if matches := titleRegex.FindStringSubmatch(line); matches != nil {
			title = strings.TrimSpace(matches[1])
			name = ""
			sectionTags = nil
			continue
		}

		if tagLineRegex.MatchString(line) {
			for _, tag := range strings.Fields(line) {
				sectionTags = append(sectionTags, strings.ToLower(strings.TrimPrefix(tag, "#")))
			}
			continue
		}

		if matches := fileTagsRegex.FindStringSubmatch(line); matches != nil {
			fileTags = splitTags(matches[1])
			continue
		}
	}
}

func (p *Parser) addRecord(path, title, name string, fileTags, sectionTags, block []string) {
	command := joinCommand(block)
	if command == "" {
		return
	}
	if name == "" {
		name = title
	}

	tags := make([]string, 0, len(fileTags)+len(sectionTags))
	tags = append(tags, fileTags...)
	tags = append(tags, sectionTags...)

	p.records = append(p.records, &cheat.Record{
		Name:             name,
		Title:            title,
		Tags:             tags,
		Command:          command,
		PrintableCommand: whitespaceRun.ReplaceAllString(command, " "),
		SourceFile:       path,
	})
}

// joinCommand merges a code block into one command line. A trailing backslash
// continues the line; separate lines are chained with " ; ".
func joinCommand(block []string) string {
	var parts []string
	var current strings.Builder
	for _, line := range block {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "\\") {
			current.WriteString(strings.TrimSpace(strings.TrimSuffix(line, "\\")))
			current.WriteString(" ")
			continue
		}
		current.WriteString(line)
		parts = append(parts, current.String())
		current.Reset()
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		parts = append(parts, rest)
	}
	return strings.Join(parts, " ; ")
}

func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func isShellLang(lang string) bool {
	shellLangs := map[string]bool{
		"": true, "sh": true, "shell": true, "bash": true,
		"zsh": true, "fish": true, "console": true, "powershell": true,
		"cmd": true,
	}
	return shellLangs[strings.ToLower(lang)]
}
