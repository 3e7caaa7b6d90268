package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
)

var errUnsupportedShell = errors.New("unsupported shell")

var shells = []string{"bash", "zsh", "fish", "powershell"}

const bashCompletion = `_%[1]s() {
  local cur opts
  COMPREPLY=()
  cur="${COMP_WORDS[COMP_CWORD]}"
  if [[ "$cur" == "-"* ]]; then
    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" "${cur}" --generate-bash-completion )
  else
    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion )
  fi
  COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
  return 0
}

complete -o bashdefault -o default -o nospace -F _%[1]s %[1]s
`

const zshCompletion = `#compdef %[1]s

_%[1]s() {
  local -a opts
  local cur
  cur=${words[-1]}
  if [[ "$cur" == "-"* ]]; then
    opts=("${(@f)$(${words[@]:0:#words[@]-1} ${cur} --generate-bash-completion)}")
  else
    opts=("${(@f)$(${words[@]:0:#words[@]-1} --generate-bash-completion)}")
  fi

  if [[ "${opts[1]}" != "" ]]; then
    _describe 'values' opts
  else
    _files
  fi
}

compdef _%[1]s %[1]s
`

const powershellCompletion = `Register-ArgumentCompleter -Native -CommandName '%[1]s' -ScriptBlock {
  param($wordToComplete, $commandAst, $cursorPosition)
  $line = "$commandAst"
  if ($wordToComplete -like '-*') {
    $line = "$line --generate-bash-completion"
  } else {
    $line = "$line -- --generate-bash-completion"
  }
  Invoke-Expression $line | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
    [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
  }
}
`

// writeCompletion prints the completion script for shell.
func writeCompletion(w io.Writer, app *cli.App, shell string) error {
	var script string
	switch strings.ToLower(shell) {
	case "bash":
		script = fmt.Sprintf(bashCompletion, app.Name)
	case "zsh":
		script = fmt.Sprintf(zshCompletion, app.Name)
	case "powershell":
		script = fmt.Sprintf(powershellCompletion, app.Name)
	case "fish":
		s, err := app.ToFishCompletion()
		if err != nil {
			return fmt.Errorf("failed to build fish completion: %w", err)
		}
		script = s
	default:
		return fmt.Errorf("%w %q: must be one of %s", errUnsupportedShell, shell, strings.Join(shells, ", "))
	}

	_, err := io.WriteString(w, script)
	return err
}
