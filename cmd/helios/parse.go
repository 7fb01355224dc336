package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nucleura/helios/pkg/ensdf/parser"
	"nucleura/helios/pkg/ensdf/record"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a dataset file and print a summary",
	Long: `Parse a single ENSDF dataset from a card-image text file and print
a summary of its contents.

The file must contain exactly one dataset: an identification card
followed by the dataset body.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read dataset file: %w", err)
		}

		ds, err := parser.New().Parse(string(data))
		if err != nil {
			return fmt.Errorf("parse dataset: %w", err)
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		return f.FormatTo(os.Stdout, newDatasetSummary(ds))
	},
}

// datasetSummary is the printable form of a parsed dataset.
type datasetSummary struct {
	NucID           string `json:"nucid"`
	Dataset         string `json:"dataset"`
	Reference       string `json:"reference,omitempty"`
	Publication     string `json:"publication,omitempty"`
	Date            string `json:"date,omitempty"`
	Levels          int    `json:"levels"`
	Gammas          int    `json:"gammas"`
	OtherRecords    int    `json:"other_records"`
	QValues         int    `json:"q_values"`
	Parents         int    `json:"parents"`
	CrossReferences int    `json:"cross_references"`
	References      int    `json:"references"`
}

func newDatasetSummary(ds *record.Dataset) datasetSummary {
	s := datasetSummary{
		NucID:           ds.NucID,
		Dataset:         ds.ID,
		Reference:       ds.Ref,
		Publication:     ds.Publication,
		Levels:          len(ds.Levels),
		Gammas:          len(ds.Gammas()),
		OtherRecords:    len(ds.Records),
		QValues:         len(ds.QValues),
		Parents:         len(ds.Parents),
		CrossReferences: len(ds.CrossReferences),
		References:      len(ds.References),
	}
	if !ds.Date.IsZero() {
		s.Date = ds.Date.Format("2006-01")
	}
	return s
}

func (s datasetSummary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", s.NucID, s.Dataset)
	if s.Reference != "" {
		fmt.Fprintf(&sb, "Reference:   %s\n", s.Reference)
	}
	if s.Publication != "" {
		fmt.Fprintf(&sb, "Publication: %s\n", s.Publication)
	}
	if s.Date != "" {
		fmt.Fprintf(&sb, "Date:        %s\n", s.Date)
	}
	fmt.Fprintf(&sb, "Levels: %d  Gammas: %d  Other records: %d",
		s.Levels, s.Gammas, s.OtherRecords)
	return sb.String()
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
