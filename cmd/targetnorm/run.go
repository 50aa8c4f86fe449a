package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bionorm/targetnorm/internal/hgvs"
	"github.com/bionorm/targetnorm/internal/input"
	"github.com/bionorm/targetnorm/internal/normalize"
	"github.com/bionorm/targetnorm/internal/output"
	"github.com/bionorm/targetnorm/internal/uniprot"
)

type runOptions struct {
	inputPath     string
	outputPath    string
	column        string
	idColumn      string
	delimiter     string
	encoding      string
	reader        string
	keepMutations bool
	noMutations   bool
	whitelistFile string
	taxon         int
	workers       int
	noGrammar     bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Normalize target names from a tabular file",
		Example: `  targetnorm run -i targets.csv -o normalized.csv
  targetnorm run -i targets.csv.gz --column name --taxon 10090
  targetnorm run -i targets.parquet --reader duckdb -o out.csv
  cat targets.csv | targetnorm run -i - -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "Input file (csv/tsv, optionally gzipped; '-' for stdin)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "-", "Output file ('-' for stdout)")
	cmd.Flags().StringVarP(&opts.column, "column", "c", "target_name", "Name of the column holding target names")
	cmd.Flags().StringVar(&opts.idColumn, "id-column", "", "Column with UniProt accessions; enables candidate validation")
	cmd.Flags().StringVar(&opts.delimiter, "delimiter", "", "Field delimiter (default: sniffed from header)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "Input encoding: utf-8, cp1251, latin1 (default: detected)")
	cmd.Flags().StringVar(&opts.reader, "reader", "csv", "Input reader: csv, duckdb")
	cmd.Flags().BoolVar(&opts.keepMutations, "keep-mutations", false, "Detect mutations but do not strip their tokens")
	cmd.Flags().BoolVar(&opts.noMutations, "no-mutations", false, "Skip mutation detection entirely")
	cmd.Flags().StringVar(&opts.whitelistFile, "mutation-whitelist", "", "File with extra whitelist tokens, one per line")
	cmd.Flags().IntVar(&opts.taxon, "taxon", normalize.DefaultTaxon, "Taxonomy identifier recorded in results")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Worker count (0 = number of CPUs)")
	cmd.Flags().BoolVar(&opts.noGrammar, "no-grammar", false, "Disable the supplementary variant-notation detector")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runNormalize(opts *runOptions) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	table, err := readTable(opts)
	if err != nil {
		return err
	}
	col, err := table.Column(opts.column)
	if err != nil {
		return err
	}
	idCol := -1
	if opts.idColumn != "" {
		idCol, err = table.Column(opts.idColumn)
		if err != nil {
			return err
		}
	}

	normOpts, err := buildOptions(opts)
	if err != nil {
		return err
	}

	out := os.Stdout
	if opts.outputPath != "" && opts.outputPath != "-" {
		out, err = os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	delim := rune(0)
	if opts.delimiter != "" {
		delim = []rune(opts.delimiter)[0]
	}
	writer := output.NewCSVWriter(out, delim)
	var validator *uniprot.Client
	if idCol >= 0 {
		validator = uniprot.NewClient("")
		validator.SetLogger(logger)
		writer.IncludeUniprotMatch()
	}
	if err := writer.WriteHeader(table.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	logger.Info("normalizing targets",
		zap.Int("rows", len(table.Rows)),
		zap.String("column", opts.column),
		zap.Int("workers", opts.workers))

	items := make(chan normalize.WorkItem, len(table.Rows))
	for i, row := range table.Rows {
		name := ""
		if col < len(row) {
			name = row[col]
		}
		items <- normalize.WorkItem{Seq: i, Name: name, Extra: row}
	}
	close(items)

	pool := normalize.NewPool(opts.workers)
	pool.SetLogger(logger)
	results := pool.Run(items, normOpts)
	err = normalize.OrderedCollect(results, func(r normalize.WorkResult) error {
		row := r.Extra.([]string)
		if validator == nil {
			return writer.Write(row, r.Res)
		}
		accession := ""
		if idCol < len(row) {
			accession = strings.TrimSpace(row[idCol])
		}
		match := validateCandidates(logger, validator, accession, r.Res.GeneLikeCandidates)
		return writer.WriteValidated(row, r.Res, match)
	})
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return writer.Flush()
}

// validateCandidates returns the first candidate the UniProt record confirms.
// Lookup failures are logged and leave the row unvalidated; they never abort
// the batch.
func validateCandidates(logger *zap.Logger, client *uniprot.Client, accession string, candidates []string) string {
	if accession == "" {
		return ""
	}
	for _, cand := range candidates {
		ok, err := client.Validate(context.Background(), accession, cand)
		if err != nil {
			logger.Warn("uniprot lookup failed",
				zap.String("accession", accession),
				zap.Error(err))
			return ""
		}
		if ok {
			return cand
		}
	}
	return ""
}

func readTable(opts *runOptions) (*input.Table, error) {
	switch opts.reader {
	case "duckdb":
		return input.DuckDBReader{}.Read(opts.inputPath)
	case "csv", "":
		r := input.CSVReader{Encoding: opts.encoding}
		if opts.delimiter != "" {
			r.Delimiter = []rune(opts.delimiter)[0]
		}
		return r.Read(opts.inputPath)
	default:
		return nil, fmt.Errorf("unknown reader %q (expected csv or duckdb)", opts.reader)
	}
}

func buildOptions(opts *runOptions) (normalize.Options, error) {
	normOpts := normalize.DefaultOptions()
	normOpts.Taxon = opts.taxon
	if opts.keepMutations {
		normOpts.StripMutations = false
	}
	if opts.noMutations {
		normOpts.DetectMutations = false
	}
	if !opts.noGrammar {
		normOpts.Grammar = hgvs.NewParser()
	}

	normOpts.MutationWhitelist = viper.GetStringSlice("mutation_whitelist")
	if opts.whitelistFile != "" {
		extra, err := readWhitelist(opts.whitelistFile)
		if err != nil {
			return normOpts, err
		}
		normOpts.MutationWhitelist = append(normOpts.MutationWhitelist, extra...)
	}
	return normOpts, nil
}

// readWhitelist loads one token per line, skipping blanks and # comments.
func readWhitelist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read whitelist file: %w", err)
	}
	var tokens []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens, nil
}
