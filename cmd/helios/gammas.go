package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nucleura/helios/pkg/ensdf/record"
)

var gammasCmd = &cobra.Command{
	Use:   "gammas <nuclide>",
	Short: "Show gamma transitions with resolved destinations",
	Long: `Show the gamma transitions of a nuclide's adopted level scheme.

Each transition lists its energy, relative intensity, multipolarity, and
the energies of the originating and destination levels. A dash marks an
unresolved destination.`,
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
		return f.FormatTo(os.Stdout, newGammaTable(args[0], ds.Gammas()))
	},
}

type gammaRow struct {
	Energy        string `json:"energy"`
	Intensity     string `json:"intensity,omitempty"`
	Multipolarity string `json:"multipolarity,omitempty"`
	From          string `json:"from,omitempty"`
	To            string `json:"to,omitempty"`
}

type gammaTable struct {
	Nuclide string     `json:"nuclide"`
	Gammas  []gammaRow `json:"gammas"`
}

func newGammaTable(nuclide string, gammas []*record.Gamma) gammaTable {
	t := gammaTable{Nuclide: nuclide, Gammas: make([]gammaRow, 0, len(gammas))}
	for _, g := range gammas {
		row := gammaRow{
			Energy:        g.Energy.String(),
			Intensity:     g.RelIntensity.String(),
			Multipolarity: g.Multipolarity,
		}
		if g.OrigLevel != nil {
			row.From = g.OrigLevel.Energy.String()
		}
		if g.DestLevel != nil {
			row.To = g.DestLevel.Energy.String()
		}
		t.Gammas = append(t.Gammas, row)
	}
	return t
}

func (t gammaTable) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d gamma transitions\n", t.Nuclide, len(t.Gammas))
	fmt.Fprintf(&sb, "%-14s %-10s %-10s %-14s %s\n", "E (keV)", "RI", "Mult", "From", "To")
	for _, row := range t.Gammas {
		to := row.To
		if to == "" {
			to = "-"
		}
		fmt.Fprintf(&sb, "%-14s %-10s %-10s %-14s %s\n",
			row.Energy, row.Intensity, row.Multipolarity, row.From, to)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func init() {
	rootCmd.AddCommand(gammasCmd)
}
