package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets <mass>",
	Short: "List the datasets available for a mass chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid mass number %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, cleanup, err := buildService(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		names, err := svc.DatasetNames(cmd.Context(), mass)
		if err != nil {
			return err
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		return f.FormatTo(os.Stdout, datasetList{Mass: mass, Datasets: names})
	},
}

type datasetList struct {
	Mass     int      `json:"mass"`
	Datasets []string `json:"datasets"`
}

func (l datasetList) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mass chain A=%d: %d datasets\n", l.Mass, len(l.Datasets))
	for _, name := range l.Datasets {
		fmt.Fprintf(&sb, "  %s\n", name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
