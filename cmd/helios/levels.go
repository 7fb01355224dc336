package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nucleura/helios/pkg/ensdf/record"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <nuclide>",
	Short: "Show the adopted level scheme of a nuclide",
	Long: `Show the adopted level scheme of a nuclide, identified by mass number
and element symbol (e.g. "60CO", "152EU").`,
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

		ds, err := svc.AdoptedLevels(cmd.Context(), mass, protons)
		if err != nil {
			return err
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		return f.FormatTo(os.Stdout, newLevelTable(args[0], ds.Levels))
	},
}

type levelRow struct {
	Energy       string `json:"energy"`
	Spin         string `json:"spin,omitempty"`
	HalfLife     string `json:"half_life,omitempty"`
	Metastable   bool   `json:"metastable,omitempty"`
	Questionable bool   `json:"questionable,omitempty"`
	Decays       int    `json:"decays"`
}

type levelTable struct {
	Nuclide string     `json:"nuclide"`
	Levels  []levelRow `json:"levels"`
}

func newLevelTable(nuclide string, levels []*record.Level) levelTable {
	t := levelTable{Nuclide: nuclide, Levels: make([]levelRow, 0, len(levels))}
	for _, lvl := range levels {
		t.Levels = append(t.Levels, levelRow{
			Energy:       lvl.Energy.String(),
			Spin:         lvl.AngularMomentum,
			HalfLife:     lvl.HalfLife.String(),
			Metastable:   lvl.Metastable,
			Questionable: lvl.Questionable,
			Decays:       len(lvl.Decays),
		})
	}
	return t
}

func (t levelTable) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d levels\n", t.Nuclide, len(t.Levels))
	fmt.Fprintf(&sb, "%-14s %-12s %-14s %s\n", "E (keV)", "Jpi", "T1/2", "Flags")
	for _, row := range t.Levels {
		var flags []string
		if row.Metastable {
			flags = append(flags, "isomer")
		}
		if row.Questionable {
			flags = append(flags, "?")
		}
		fmt.Fprintf(&sb, "%-14s %-12s %-14s %s\n",
			row.Energy, row.Spin, row.HalfLife, strings.Join(flags, ","))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}
