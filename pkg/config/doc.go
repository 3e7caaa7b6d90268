// Package config loads settings from environment variables into tagged
// structs.
//
// It wraps `github.com/caarlos0/env/v11` for parsing and
// `github.com/joho/godotenv` for `.env` files:
//
//   - Values come from the process environment. A `.env` file in the working
//     directory is loaded once per process if present; variables that are
//     already set always win over file contents.
//   - Additional files can be loaded explicitly with LoadEnv or WithEnvFiles.
//     Unlike the default file, explicit files must exist.
//   - WithPrefix namespaces every variable, so a struct tagged `env:"LENGTH"`
//     reads `PASSMAKER_LENGTH` when loaded with WithPrefix("PASSMAKER_").
//   - WithEnvironment replaces the process environment with a fixed map,
//     which keeps tests hermetic and parallel.
//
// # Usage
//
//	type Settings struct {
//	    Length   int    `env:"LENGTH" envDefault:"16"`
//	    Encoding string `env:"ENCODING" envDefault:"utf-8"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("PASSMAKER_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrNilPointer`      – nil pointer passed to Load/MustLoad.
//   - `ErrParsingConfig`   – environment could not be parsed into the struct.
//   - `ErrLoadingEnvFile`  – an explicitly requested `.env` file failed to load.
package config
