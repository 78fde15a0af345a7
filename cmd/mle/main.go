// Command mle drives the multilinear extension engine over the BN254
// scalar field: a small demo evaluation, a benchmark sweep rendered as a
// chart, and a memory-profiled run.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "mle",
	Short: "Evaluate multilinear extensions over the BN254 scalar field",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

// nextNumberedPath scans dir for names of the form prefixNNNsuffix and
// returns a path carrying the next free number, creating dir if needed.
func nextNumberedPath(dir, prefix, suffix string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	max := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return filepath.Join(dir, fmt.Sprintf("%s%03d%s", prefix, max+1, suffix)), nil
}
