package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"figurine-manager/core/reconcile"
	"figurine-manager/core/storage"
	"figurine-manager/feature/collection"
	"figurine-manager/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	requiredFile string
	ownedFile    string
	explainFlag  bool
	saveFlag     bool
	jsonFlag     bool
)

// reconcileCmd matches required models against owned miniatures.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [roster]",
	Short: "Match a roster against the collection",
	Long: `Reconcile the models a roster requires against the owned collection.

Required models come from a stored roster (by key) or from a local file;
owned items come from the collection database or from a local file.
Local files may be JSON or YAML.

Examples:
  # Stored roster against the collection database
  reconcile border-patrol

  # Store the report in the bucket
  reconcile border-patrol --save

  # Local files only, no database or storage needed
  reconcile --required army.yaml --owned shelf.json --json

  # Show every candidate pair and its weight
  reconcile --required army.yaml --owned shelf.json --explain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&requiredFile, "required", "", "Read required models from a JSON or YAML file instead of a stored roster")
	reconcileCmd.Flags().StringVar(&ownedFile, "owned", "", "Read owned items from a JSON or YAML file instead of the collection database")
	reconcileCmd.Flags().BoolVar(&explainFlag, "explain", false, "Print the candidate pairs and weights instead of a report")
	reconcileCmd.Flags().BoolVar(&saveFlag, "save", false, "Store the report in object storage")
	reconcileCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the report as JSON")

	RootCmd.AddCommand(reconcileCmd)
}

// fileModels reads required models from a local document.
type fileModels string

func (f fileModels) RequiredModels(_ context.Context, _ string) ([]reconcile.RequiredModel, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return reconcile.DecodeRequired(data, reconcile.FormatFromName(string(f)))
}

// fileInventory reads owned items from a local document.
type fileInventory string

func (f fileInventory) OwnedItems(_ context.Context) ([]reconcile.OwnedItem, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return reconcile.DecodeOwned(data, reconcile.FormatFromName(string(f)))
}

func runReconcile(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0 && requiredFile == "":
		return fmt.Errorf("a roster key or --required file is needed")
	case len(args) == 1 && requiredFile != "":
		return fmt.Errorf("use either a roster key or --required, not both")
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	opts := reconciliation.Options{
		Bucket:       e.cfg.Storage.Bucket,
		ReportPrefix: e.cfg.Reconcile.ReportPrefix,
		MaxInstances: e.cfg.Reconcile.MaxInstances,
		Logger:       e.logger,
	}

	var client storage.Client
	if requiredFile == "" || saveFlag {
		if client, err = e.storage(); err != nil {
			return err
		}
		opts.Client = client
	}

	var key string
	if requiredFile != "" {
		key = strings.TrimSuffix(filepath.Base(requiredFile), filepath.Ext(requiredFile))
		opts.Models = fileModels(requiredFile)
	} else {
		key = args[0]
		opts.Models = e.rosterProvider(client, 0)
	}

	if ownedFile != "" {
		opts.Inventory = fileInventory(ownedFile)
	} else {
		db, err := e.database()
		if err != nil {
			return err
		}
		opts.Inventory = collection.NewRepository(db)
	}

	svc := reconciliation.NewService(opts)
	ctx := cmd.Context()

	if explainFlag {
		required, owned, err := reconcile.Load(ctx, key, opts.Models, opts.Inventory)
		if err != nil {
			return err
		}
		explanation, err := svc.Explain(ctx, required, owned)
		if err != nil {
			return err
		}
		return printJSON(explanation)
	}

	report, saved, err := svc.ReconcileRoster(ctx, key, saveFlag)
	if err != nil {
		return err
	}
	if saved != nil {
		e.logger.Info("Report stored", zap.String("id", saved.ID), zap.String("object", saved.Object))
	}

	if jsonFlag {
		return printJSON(report)
	}
	printReport(key, report)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printReport(key string, report *reconcile.Report) {
	s := report.Summary
	fmt.Printf("\n=== Reconciliation: %s ===\n", key)
	fmt.Printf("Required: %d\n", s.Required)
	fmt.Printf("Owned: %d\n", s.Owned)
	fmt.Printf("Matched: %d\n", s.Matched)
	fmt.Printf("Missing: %d\n", s.Missing)
	fmt.Printf("Spare: %d\n", s.Spare)

	if len(report.Matches) > 0 {
		fmt.Println("\nMatches:")
		for _, m := range report.Matches {
			fmt.Printf("  %s <- %s\n", describeRequired(m.Required), m.Owned.Name)
		}
	}
	if len(report.Missing) > 0 {
		fmt.Println("\nMissing:")
		for _, r := range report.Missing {
			fmt.Printf("  %d x %s\n", r.Amount, describeRequired(r))
		}
	}
	if len(report.Spare) > 0 {
		fmt.Println("\nSpare:")
		for _, o := range report.Spare {
			fmt.Printf("  %d x %s\n", o.Amount, o.Name)
		}
	}
}

func describeRequired(r reconcile.RequiredModel) string {
	var where []string
	if r.Unit != nil {
		where = append(where, *r.Unit)
	}
	if r.Catalogue != nil {
		where = append(where, *r.Catalogue)
	}
	if len(where) == 0 {
		return r.Name
	}
	return fmt.Sprintf("%s [%s]", r.Name, strings.Join(where, " / "))
}
