package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const nmapCheats = "# Nmap\n" +
	"% nmap, recon\n" +
	"\n" +
	"## quick scan\n" +
	"#plateform/linux #target/remote\n" +
	"Fast scan of the top ports.\n" +
	"```\n" +
	"nmap -F <ip>\n" +
	"```\n" +
	"\n" +
	"## full scan\n" +
	"```bash\n" +
	"nmap -p- \\\n" +
	"  -sV <ip> \\\n" +
	"  -oA <output>\n" +
	"```\n" +
	"\n" +
	"## ignored block\n" +
	"```python\n" +
	"print('not a shell command')\n" +
	"```\n"

func TestParseLines(t *testing.T) {
	p := NewParser()
	p.ParseLines("cheats/nmap.md", strings.Split(nmapCheats, "\n"))

	records := p.records
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	quick := records[0]
	if quick.Name != "quick scan" || quick.Title != "Nmap" {
		t.Errorf("name/title = %q/%q", quick.Name, quick.Title)
	}
	if quick.Command != "nmap -F <ip>" {
		t.Errorf("Command = %q", quick.Command)
	}
	wantTags := []string{"nmap", "recon", "plateform/linux", "target/remote"}
	if !reflect.DeepEqual(quick.Tags, wantTags) {
		t.Errorf("Tags = %v, want %v", quick.Tags, wantTags)
	}
	if quick.SourceFile != "cheats/nmap.md" {
		t.Errorf("SourceFile = %q", quick.SourceFile)
	}

	full := records[1]
	if full.Command != "nmap -p- -sV <ip> -oA <output>" {
		t.Errorf("continued Command = %q", full.Command)
	}
	if !reflect.DeepEqual(full.Tags, []string{"nmap", "recon"}) {
		t.Errorf("section tags leaked: %v", full.Tags)
	}
	if !reflect.DeepEqual(full.Placeholders(), []string{"ip", "output"}) {
		t.Errorf("Placeholders() = %v", full.Placeholders())
	}
}

func TestJoinCommand(t *testing.T) {
	tests := []struct {
		name     string
		block    []string
		expected string
	}{
		{"single", []string{"ls -la"}, "ls -la"},
		{"multiple lines", []string{"cd /tmp", "", "ls"}, "cd /tmp ; ls"},
		{"continuation", []string{"curl \\", "  -s <url>"}, "curl -s <url>"},
		{"dangling continuation", []string{"echo a \\"}, "echo a"},
		{"empty", []string{"", "  "}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinCommand(tt.block); got != tt.expected {
				t.Errorf("joinCommand() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPrintableCommandCollapsesWhitespace(t *testing.T) {
	p := NewParser()
	p.ParseLines("x.md", []string{"## tabs", "```", "echo\t\ta   b", "```"})

	if len(p.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(p.records))
	}
	if got := p.records[0].PrintableCommand; got != "echo a b" {
		t.Errorf("PrintableCommand = %q", got)
	}
	if p.records[0].Name != "tabs" {
		t.Errorf("Name = %q", p.records[0].Name)
	}
}

func TestNameFallsBackToTitle(t *testing.T) {
	p := NewParser()
	p.ParseLines("x.md", []string{"# Only title", "```sh", "whoami", "```"})

	if got := p.records[0].Name; got != "Only title" {
		t.Errorf("Name = %q", got)
	}
}

func TestParsePath(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		filepath.Join(dir, "a.md"):  "# A\n## first\n```\necho a\n```\n",
		filepath.Join(sub, "c.md"):  "# C\n## third\n```\necho c\n```\n",
		filepath.Join(dir, "b.md"):  "# B\n## second\n```\necho b\n```\n",
		filepath.Join(dir, "x.txt"): "## skipped\n```\necho x\n```\n",
		filepath.Join(dir, "UP.MD"): "## upper\n```\necho up\n```\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	catalog, err := NewParser().ParsePath(dir)
	if err != nil {
		t.Fatalf("ParsePath() error: %v", err)
	}

	var got []string
	for _, r := range catalog.Records() {
		got = append(got, r.Command)
	}
	// WalkDir visits "b/" before "b.md"
	want := []string{"echo up", "echo a", "echo c", "echo b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("commands = %v, want %v", got, want)
	}

	single, err := NewParser().ParsePath(filepath.Join(dir, "a.md"))
	if err != nil || single.Len() != 1 {
		t.Errorf("single file: len=%d err=%v", single.Len(), err)
	}

	if _, err := NewParser().ParsePath(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing path")
	}
}
