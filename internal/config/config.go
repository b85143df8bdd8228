package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	CheatPath     string `mapstructure:"path"`
	Output        string `mapstructure:"output"`
	Shell         string `mapstructure:"shell"`
	GlobalsFile   string `mapstructure:"globals_file"`
	PreHook       string `mapstructure:"pre_hook"`
	PostHook      string `mapstructure:"post_hook"`
	LogFile       string `mapstructure:"log_file"`
	ColorTitle    string `mapstructure:"color_title"`
	ColorName     string `mapstructure:"color_name"`
	ColorCommand  string `mapstructure:"color_command"`
	ColorArg      string `mapstructure:"color_arg"`
	ColorCursor   string `mapstructure:"color_cursor"`
	ColorSelected string `mapstructure:"color_selected"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorDim      string `mapstructure:"color_dim"`
	ColumnTitle   int    `mapstructure:"column_title"`
	ColumnName    int    `mapstructure:"column_name"`
	ColumnCommand int    `mapstructure:"column_command"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("path", ".")
	viper.SetDefault("output", "print")
	viper.SetDefault("shell", getDefaultShell())
	viper.SetDefault("globals_file", defaultGlobalsFile())
	viper.SetDefault("pre_hook", "")
	viper.SetDefault("post_hook", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("color_title", "7")
	viper.SetDefault("color_name", "5")
	viper.SetDefault("color_command", "2")
	viper.SetDefault("color_arg", "5")
	viper.SetDefault("color_cursor", "1")
	viper.SetDefault("color_selected", "236")
	viper.SetDefault("color_border", "240")
	viper.SetDefault("color_dim", "241")
	viper.SetDefault("column_title", 20)   // Percent of the row for tags/title
	viper.SetDefault("column_name", 30)    // Percent of the row for the name
	viper.SetDefault("column_command", 50) // Percent of the row for the command

	viper.SetConfigName("cheatpick")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "cheatpick"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("CHEATPICK")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPath returns the cheat path with tilde expansion
func GetPath() string {
	return expandTilde(viper.GetString("path"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetShell returns the shell
func GetShell() string {
	return viper.GetString("shell")
}

// GetGlobalsFile returns the global variables file with tilde expansion
func GetGlobalsFile() string {
	return expandTilde(viper.GetString("globals_file"))
}

// GetPreHook returns the string prepended to the final command
func GetPreHook() string {
	return viper.GetString("pre_hook")
}

// GetPostHook returns the string appended to the final command
func GetPostHook() string {
	return viper.GetString("post_hook")
}

// GetLogFile returns the debug log path, empty when logging is off
func GetLogFile() string {
	return expandTilde(viper.GetString("log_file"))
}

// GetColorTitle returns the color for the title column and info box title
func GetColorTitle() string {
	return viper.GetString("color_title")
}

// GetColorName returns the color for the name column
func GetColorName() string {
	return viper.GetString("color_name")
}

// GetColorCommand returns the color for the command column and preview literals
func GetColorCommand() string {
	return viper.GetString("color_command")
}

// GetColorArg returns the color for the placeholders and argument names
func GetColorArg() string {
	return viper.GetString("color_arg")
}

// GetColorCursor returns the color for the selection marker and prompt
func GetColorCursor() string {
	return viper.GetString("color_cursor")
}

// GetColorSelected returns the color for the background of the selected row
func GetColorSelected() string {
	return viper.GetString("color_selected")
}

// GetColorBorder returns the color for the box borders and dividers
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorDim returns the color for the counter, footer and hints
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColumns returns the title, name and command column shares in percent
func GetColumns() (title, name, command int) {
	return viper.GetInt("column_title"), viper.GetInt("column_name"), viper.GetInt("column_command")
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetPath sets path at runtime
func SetPath(path string) {
	viper.Set("path", path)
	C.CheatPath = path
}

// SetGlobalsFile sets the global variables file at runtime
func SetGlobalsFile(path string) {
	viper.Set("globals_file", path)
	C.GlobalsFile = path
}

func getDefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}

func defaultGlobalsFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "cheatpick", "globals.json")
	}
	return ""
}
