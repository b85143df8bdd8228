package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	testChdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if err := Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if GetOutput() != "print" || C.Output != "print" {
		t.Errorf("output = %q / %q, want print", GetOutput(), C.Output)
	}
	if title, name, cmd := GetColumns(); title+name+cmd != 100 {
		t.Errorf("column shares add up to %d", title+name+cmd)
	}
}

func TestEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	testChdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHEATPICK_OUTPUT", "copy")

	if err := Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if GetOutput() != "copy" {
		t.Errorf("GetOutput() = %q, want copy", GetOutput())
	}

	SetOutput("exec")
	if GetOutput() != "exec" || C.Output != "exec" {
		t.Errorf("SetOutput did not apply: %q / %q", GetOutput(), C.Output)
	}
}

func TestConfigFileInWorkingDir(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	content := "path: ~/cheats\nglobals_file: ~/vars.toml\npre_hook: \"sudo \"\n"
	if err := os.WriteFile(filepath.Join(dir, "cheatpick.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if GetPath() != filepath.Join(home, "cheats") {
		t.Errorf("GetPath() = %q", GetPath())
	}
	if GetGlobalsFile() != filepath.Join(home, "vars.toml") {
		t.Errorf("GetGlobalsFile() = %q", GetGlobalsFile())
	}
	if GetPreHook() != "sudo " {
		t.Errorf("GetPreHook() = %q", GetPreHook())
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := map[string]string{
		"":          "",
		"/abs/path": "/abs/path",
		"rel":       "rel",
		"~":         home,
		"~/x":       filepath.Join(home, "x"),
	}
	for in, want := range tests {
		if got := expandTilde(in); got != want {
			t.Errorf("expandTilde(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestColorGetters(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	testChdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHEATPICK_COLOR_ARG", "33")

	if err := Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	tests := []struct {
		name string
		get  func() string
		want string
	}{
		{"title", GetColorTitle, "7"},
		{"name", GetColorName, "5"},
		{"command", GetColorCommand, "2"},
		{"arg from env", GetColorArg, "33"},
		{"cursor", GetColorCursor, "1"},
		{"selected", GetColorSelected, "236"},
		{"border", GetColorBorder, "240"},
		{"dim", GetColorDim, "241"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.get(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// testChdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
