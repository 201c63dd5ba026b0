// Command taxsplit evaluates a household scenario file and prints the joint
// tax, the expense settlement and the splitting table.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mmynk/taxsplit/internal/calculator"
	"github.com/mmynk/taxsplit/internal/models"
	"github.com/mmynk/taxsplit/internal/report"
	"github.com/mmynk/taxsplit/internal/scenario"
	"github.com/mmynk/taxsplit/pkg/logging"
)

var (
	scenarioPath = flag.String("scenario", "", "scenario YAML file (required)")
	surcharge    = flag.Bool("surcharge", false, "force the solidarity surcharge on")
	showTable    = flag.Bool("table", true, "print the splitting table")
	logLevel     = flag.String("log.level", "warn", "log level (debug info warn error)")
)

func main() {
	flag.Parse()
	logging.Setup(*logLevel, "pretty")

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: taxsplit -scenario household.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(os.Stdout, *scenarioPath, *surcharge, *showTable); err != nil {
		slog.Error("taxsplit failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, path string, forceSurcharge, table bool) error {
	cfg, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if forceSurcharge {
		cfg.ApplySurcharge = true
	}
	cfg = calculator.ApplyAutoWithholding(cfg)
	slog.Debug("Loaded scenario", "path", path, "expenses", len(cfg.PersonA.Expenses))

	res := calculator.ComputeResult(cfg)
	fmt.Fprintln(w, "== Joint assessment ==")
	if err := report.WriteResult(w, res); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	fmt.Fprintln(w, "\n== Expense settlement ==")
	if err := report.WriteSettlement(w, calculator.ComputeSettlement(cfg)); err != nil {
		return fmt.Errorf("write settlement: %w", err)
	}

	if !table {
		return nil
	}
	fmt.Fprintln(w, "\n== Splitting table ==")
	rows := calculator.SplittingTable(res.JointBase)
	var current *models.TableRow
	if row, ok := calculator.CurrentRates(res.JointBase); ok {
		current = &row
	}
	if err := report.WriteTable(w, rows, current); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
