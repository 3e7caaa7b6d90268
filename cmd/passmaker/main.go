// Command passmaker prints random passwords built from configurable character
// classes.
//
//	passmaker --length 20 --symbol-minimum-count 3 --count 5
//	passmaker --other-candidates '🇯🇵🇺🇸' --other-minimum-count 1
//	passmaker --completion zsh > ~/.zsh/completions/_passmaker
//
// Defaults can be set with PASSMAKER_* environment variables or a .env file.
package main

import (
	"fmt"
	"os"
)

// Set by the release build.
var version = "dev"

func main() {
	app, err := newApp(defaultRuntime())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
