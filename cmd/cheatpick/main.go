package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gubarz/cheatpick/internal/config"
	"github.com/gubarz/cheatpick/internal/executor"
	"github.com/gubarz/cheatpick/internal/globals"
	"github.com/gubarz/cheatpick/internal/parser"
	"github.com/gubarz/cheatpick/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "cheatpick [path]",
	Short: "Interactive picker for command templates",
	Long: `Pick a command template from Markdown cheat files, fill in its
<placeholders>, and print, copy or execute the result.

Type to filter, Enter to select, Tab to complete the query.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runPicker,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(widgetCmd, setCmd, varsCmd)

	rootCmd.PersistentFlags().StringP("output", "o", "", "Output mode: print, copy, exec")
	rootCmd.PersistentFlags().StringP("query", "q", "", "Initial search query")
	rootCmd.PersistentFlags().String("globals", "", "Global variables file (.json or .toml)")
	rootCmd.PersistentFlags().Bool("print", false, "Print command (shorthand for -o print)")
	rootCmd.PersistentFlags().Bool("copy", false, "Copy command (shorthand for -o copy)")
	rootCmd.PersistentFlags().Bool("exec", false, "Execute command (shorthand for -o exec)")
	rootCmd.PersistentFlags().Bool("auto", false, "Auto-select if query matches exactly one result")
	rootCmd.PersistentFlags().BoolP("benchmark", "b", false, "Benchmark load time and exit")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("globals_file", rootCmd.PersistentFlags().Lookup("globals"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runPicker(cmd *cobra.Command, args []string) error {
	// Determine path
	path := "."
	if len(args) > 0 {
		path = args[0]
	} else if config.GetPath() != "." {
		path = config.GetPath()
	}

	// Handle output mode flags
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput(executor.ModePrint)
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput(executor.ModeCopy)
	} else if e, _ := cmd.Flags().GetBool("exec"); e {
		config.SetOutput(executor.ModeExec)
	}

	query, _ := cmd.Flags().GetString("query")
	auto, _ := cmd.Flags().GetBool("auto")

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path: %w", err)
	}

	benchmark, _ := cmd.Flags().GetBool("benchmark")
	start := time.Now()

	catalog, err := parser.NewParser().ParsePath(absPath)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if catalog.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no cheats found in %s\n", absPath)
	}

	store, err := globals.Load(config.GetGlobalsFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring globals file: %v\n", err)
		store, _ = globals.Load("")
	}

	if benchmark {
		elapsed := time.Since(start)
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Printf("Loaded %d cheats and %d globals in %v\n", catalog.Len(), len(store.Names()), elapsed)
		fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
			m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
		return nil
	}

	result, err := ui.Run(catalog, store.Vars(), ui.Options{Query: query, Auto: auto})
	if err != nil {
		return err
	}
	if !result.Selected {
		return nil
	}

	exec := executor.NewExecutor(config.GetShell()).
		WithHooks(config.GetPreHook(), config.GetPostHook())
	return exec.Output(result.Command, config.GetOutput())
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
