package main

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/HicaroD/razen/internal/config"
)

// printEnv shows where the configuration came from followed by the resolved
// options as a razen.toml document.
func printEnv(w io.Writer, path string, opts *config.CompilerOptions) error {
	if path == "" {
		path = "(defaults)"
	}
	fmt.Fprintf(w, "# %s\n", path)
	if err := toml.NewEncoder(w).Encode(opts); err != nil {
		return errors.Wrap(err, "encoding options")
	}
	return nil
}
