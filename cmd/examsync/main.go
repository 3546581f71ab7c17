// Package main provides the examsync CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/suneval/examsync/internal/config"
	"github.com/suneval/examsync/internal/logger"
	"github.com/suneval/examsync/pkg/examsync"
	"github.com/suneval/examsync/pkg/examsync/scoring"
)

var (
	workbookPath string
	mappingPath  string
	baseDir      string
	logLevel     string
	logFormat    string

	exportSheet     string
	exportModel     string
	exportOutput    string
	exportAllModels bool
	exportAllSheets bool

	importJSON     string
	importAll      bool
	importUpdate   bool
	importPosition int
	importAfter    string
	importLabel    string

	listSheet      string
	validateSheet  string
	metadataOutput string

	summarySubject string
	summaryBest    int

	log zerolog.Logger
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "examsync",
		Short: "Synchronize exam scores between the workbook and JSON records",
		Long: `examsync reads model answers out of the exam workbook, converts them to
per-section result records, and writes records back into the workbook as
model columns.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.Setup(logLevel, logFormat)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&workbookPath, "workbook", cfg.WorkbookPath, "Workbook file path")
	pf.StringVar(&mappingPath, "mapping", cfg.MappingPath, "Model name mapping file")
	pf.StringVar(&baseDir, "base-dir", cfg.BaseDir, "Root directory of the record folders")
	pf.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format: pretty or json")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export workbook columns to result records",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "", "Sheet name (e.g. 국어-공통)")
	exportCmd.Flags().StringVar(&exportModel, "model", "", "Model column to export")
	exportCmd.Flags().BoolVar(&exportAllModels, "all-models", false, "Export every model column of the sheet")
	exportCmd.Flags().BoolVar(&exportAllSheets, "all-sheets", false, "Export every sheet into one aggregate JSON array")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import result records into workbook columns",
		RunE:  runImport,
	}
	importCmd.Flags().StringVar(&importJSON, "json", "", "Record file to import")
	importCmd.Flags().BoolVar(&importAll, "all", false, "Import every mapped record file")
	importCmd.Flags().IntVar(&importPosition, "position", 0, "1-based column to insert at")
	importCmd.Flags().StringVar(&importAfter, "after", "", "Insert right of this model column")
	importCmd.Flags().BoolVar(&importUpdate, "update", false, "Overwrite an existing model column")
	importCmd.Flags().StringVar(&importLabel, "sheet-label", "", "Column label override")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List model columns and scores",
		RunE:  runList,
	}
	listCmd.Flags().StringVar(&listSheet, "sheet", "", "Only this sheet")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Cross-check sheets against their question banks",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVar(&validateSheet, "sheet", "", "Only this sheet")

	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "Merge question banks into one metadata file",
		RunE:  runMetadata,
	}
	metadataCmd.Flags().StringVarP(&metadataOutput, "output", "o", "", "Output file path")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print combined per-subject scores",
		RunE:  runSummary,
	}
	summaryCmd.Flags().StringVar(&summarySubject, "subject", "", "Only this subject")
	summaryCmd.Flags().IntVar(&summaryBest, "best", 0, "Count only the N best elective parts")

	rootCmd.AddCommand(exportCmd, importCmd, listCmd, validateCmd, metadataCmd, summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newManager() (*examsync.SyncManager, error) {
	return examsync.NewSyncManager(examsync.Options{
		WorkbookPath: workbookPath,
		MappingPath:  mappingPath,
		BaseDir:      baseDir,
		Logger:       log,
	})
}

func runExport(cmd *cobra.Command, args []string) error {
	sync, err := newManager()
	if err != nil {
		return err
	}
	defer sync.Close()

	switch {
	case exportAllSheets:
		path, n, failures := sync.ExportAll(exportOutput, exportModel)
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "failed: %v\n", f)
		}
		if path != "" {
			fmt.Printf("exported %d entries to %s\n", n, path)
		}
		if len(failures) > 0 {
			return fmt.Errorf("%d unit(s) failed", len(failures))
		}
		return nil

	case exportSheet != "":
		if exportAllModels {
			n, failures := sync.ExportSheetModels(exportSheet)
			for _, f := range failures {
				fmt.Fprintf(os.Stderr, "failed: %v\n", f)
			}
			fmt.Printf("exported %d model(s) from %s\n", n, exportSheet)
			if len(failures) > 0 {
				return fmt.Errorf("%d unit(s) failed", len(failures))
			}
			return nil
		}
		if exportModel == "" {
			return errors.New("specify --model or --all-models")
		}
		path, err := sync.ExportModel(exportSheet, exportModel, exportOutput)
		if err != nil {
			return err
		}
		fmt.Printf("exported %s/%s to %s\n", exportSheet, exportModel, path)
		return nil

	default:
		return errors.New("specify --sheet or --all-sheets")
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	sync, err := newManager()
	if err != nil {
		return err
	}
	defer sync.Close()

	if importAll {
		n, failures := sync.ImportAll(importUpdate)
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "failed: %v\n", f)
		}
		fmt.Printf("imported %d record(s)\n", n)
		if len(failures) > 0 {
			return fmt.Errorf("%d unit(s) failed", len(failures))
		}
		return nil
	}

	if importJSON == "" {
		return errors.New("specify --json or --all")
	}
	opts := examsync.ImportOptions{
		Position:   importPosition,
		AfterModel: importAfter,
		Update:     importUpdate,
		SheetLabel: importLabel,
	}
	if err := sync.Import(importJSON, opts); err != nil {
		return err
	}
	if err := sync.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	fmt.Printf("imported %s\n", importJSON)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	sync, err := newManager()
	if err != nil {
		return err
	}
	defer sync.Close()

	sheets, err := sync.ListModels(listSheet)
	if err != nil {
		return err
	}
	for _, s := range sheets {
		fmt.Printf("\n[%s] (%d models)\n", s.Sheet, len(s.Models))
		for _, m := range s.Models {
			if m.HasScore {
				fmt.Printf("  - %s: %d\n", m.Name, m.Score)
			} else {
				fmt.Printf("  - %s: (no score)\n", m.Name)
			}
		}
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	sync, err := newManager()
	if err != nil {
		return err
	}
	defer sync.Close()

	findings := sync.Validate(validateSheet)
	if len(findings) == 0 {
		fmt.Println("validation passed")
		return nil
	}
	fmt.Printf("validation found %d issue(s):\n", len(findings))
	for _, f := range findings {
		fmt.Printf("  - %s\n", f)
	}
	return fmt.Errorf("%d finding(s)", len(findings))
}

func runMetadata(cmd *cobra.Command, args []string) error {
	sync, err := newManager()
	if err != nil {
		return err
	}
	defer sync.Close()

	path, n, err := sync.ExportMetadata(metadataOutput)
	if err != nil {
		return err
	}
	fmt.Printf("merged %d questions into %s\n", n, path)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	sync, err := newManager()
	if err != nil {
		return err
	}
	defer sync.Close()

	var strat scoring.Strategy = scoring.SumParts{}
	if summaryBest > 0 {
		strat = scoring.BestElectives{N: summaryBest}
	}

	summaries, err := sync.Summarize(summarySubject, strat)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		fmt.Printf("\n%s\n", s.Subject)
		for _, m := range s.Scores {
			fmt.Printf("  %-30s %d / %d\n", m.Model, m.Score, m.MaxScore)
		}
	}
	return nil
}
