package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var widgetCmd = &cobra.Command{
	Use:   "widget [shell]",
	Short: "Output shell widget script for integration",
	Long: `Outputs a shell script that can be sourced for shell integration.

Usage:
  eval "$(cheatpick widget bash)"

Then press Ctrl+G to trigger the cheatpick selector. Text already typed on
the command line becomes the initial query; when it matches exactly one
template that template is picked right away. The filled-in command replaces
the command line and is not run.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE:      runWidget,
}

// pickCommand is what every widget runs. The command line text is appended
// as the query.
const pickCommand = "cheatpick --print --auto --query"

// widgetScripts holds one script per shell. {{pick}} stands for pickCommand.
var widgetScripts = map[string]string{
	"bash": `#!/usr/bin/env bash
# cheatpick: Ctrl+G picks a template, using the current line as the query

_cheatpick_widget() {
   local output
   output="$({{pick}} "${READLINE_LINE}")" || return

   if [ -n "$output" ]; then
      READLINE_LINE="$output"
      READLINE_POINT=${#READLINE_LINE}
   fi
}

if [ ${BASH_VERSION:0:1} -lt 4 ]; then
   echo "cheatpick widget requires bash 4+" >&2
else
   bind -x '"\C-g": _cheatpick_widget'
fi
`,
	"zsh": `#!/usr/bin/env zsh
# cheatpick: Ctrl+G picks a template, using the current line as the query

_cheatpick_widget() {
   local output
   output="$({{pick}} "$BUFFER")"

   if [ $? -eq 0 ] && [ -n "$output" ]; then
      BUFFER="$output"
      CURSOR=${#BUFFER}
   fi

   zle reset-prompt
}

zle -N _cheatpick_widget
bindkey '^g' _cheatpick_widget
`,
	"fish": `# cheatpick: Ctrl+G picks a template, using the current line as the query

function _cheatpick_widget
   set -l output ({{pick}} (commandline))

   if test $status -eq 0; and test -n "$output"
      commandline -r "$output"
      commandline -f end-of-line
   end

   commandline -f repaint
end

bind \cg _cheatpick_widget
`,
}

// widgetScript returns the integration script for shell
func widgetScript(shell string) (string, error) {
	script, ok := widgetScripts[shell]
	if !ok {
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
	}
	return strings.ReplaceAll(script, "{{pick}}", pickCommand), nil
}

func runWidget(cmd *cobra.Command, args []string) error {
	script, err := widgetScript(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}
