package internal

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every value resolved from the build directory",
	Long:  `Show detects the build system of the MapCache build directory and prints all derived values as YAML or TOML.`,
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "Output format (yaml or toml)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	marshal, err := marshaler(showFormat)
	if err != nil {
		return err
	}
	r, err := resolve()
	if err != nil {
		return err
	}
	snap, err := r.Snapshot()
	if err != nil {
		return err
	}
	data, err := marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", showFormat, err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func marshaler(format string) (func(any) ([]byte, error), error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal, nil
	case "toml":
		return toml.Marshal, nil
	}
	return nil, fmt.Errorf("unknown format %q (want yaml or toml)", format)
}
