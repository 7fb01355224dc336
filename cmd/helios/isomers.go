package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var isomersCmd = &cobra.Command{
	Use:   "isomers <nuclide>",
	Short: "Show the long-lived states of a nuclide",
	Long: `Show the long-lived states of a nuclide: the ground state followed by
every level marked metastable in the adopted level scheme.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mass, protons, err := parseNuclideArg(args[0])
		if err != nil {
			return err
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

		nuc, err := svc.Nucleus(cmd.Context(), mass, protons)
		if err != nil {
			return err
		}

		isomers := nuc.Isomers()
		rows := make([]levelRow, 0, len(isomers))
		for _, lvl := range isomers {
			rows = append(rows, levelRow{
				Energy:     lvl.Energy.String(),
				Spin:       lvl.AngularMomentum,
				HalfLife:   lvl.HalfLife.String(),
				Metastable: lvl.Metastable,
				Decays:     len(lvl.Decays),
			})
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		return f.FormatTo(os.Stdout, isomerTable{Nuclide: args[0], States: rows})
	},
}

type isomerTable struct {
	Nuclide string     `json:"nuclide"`
	States  []levelRow `json:"states"`
}

func (t isomerTable) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d long-lived states\n", t.Nuclide, len(t.States))
	fmt.Fprintf(&sb, "%-14s %-12s %s\n", "E (keV)", "Jpi", "T1/2")
	for _, row := range t.States {
		fmt.Fprintf(&sb, "%-14s %-12s %s\n", row.Energy, row.Spin, row.HalfLife)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func init() {
	rootCmd.AddCommand(isomersCmd)
}
