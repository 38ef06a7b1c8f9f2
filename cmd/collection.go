package cmd

import (
	"fmt"
	"os"

	"figurine-manager/core/reconcile"
	"figurine-manager/feature/collection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var replaceFlag bool

// collectionCmd is the parent command for collection operations.
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage the owned miniature collection",
}

// collectionImportCmd imports owned items from a file.
var collectionImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import owned items from a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		db, err := e.database()
		if err != nil {
			return err
		}

		svc := collection.NewService(db, e.logger, nil)
		n, err := svc.Import(cmd.Context(), data, reconcile.FormatFromName(args[0]), replaceFlag)
		if err != nil {
			return err
		}

		total, err := svc.Count(cmd.Context())
		if err != nil {
			return err
		}
		e.logger.Info("Import completed",
			zap.String("file", args[0]),
			zap.Int("items", n),
			zap.Int64("total", total),
			zap.Bool("replace", replaceFlag),
		)
		return nil
	},
}

// collectionListCmd prints the stored items.
var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List owned items",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		db, err := e.database()
		if err != nil {
			return err
		}

		items, err := collection.NewService(db, e.logger, nil).List(cmd.Context())
		if err != nil {
			return err
		}

		if jsonFlag {
			return printJSON(items)
		}

		total := 0
		for _, item := range items {
			total += item.Amount
			painted := ""
			if item.Painted != nil && *item.Painted {
				painted = " (painted)"
			}
			fmt.Printf("%3d x %s%s\n", item.Amount, item.Name, painted)
			for _, c := range item.Criteria {
				fmt.Printf("      matches %s\n", describeRequired(reconcile.RequiredModel{
					Name:      derefOr(c.Name, "*"),
					Unit:      c.Unit,
					Catalogue: c.Catalogue,
				}))
			}
		}
		fmt.Printf("\n%d items, %d miniatures\n", len(items), total)
		return nil
	},
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func init() {
	collectionImportCmd.Flags().BoolVar(&replaceFlag, "replace", false, "Replace the whole collection instead of appending")
	collectionListCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print items as JSON")

	collectionCmd.AddCommand(collectionImportCmd, collectionListCmd)
	RootCmd.AddCommand(collectionCmd)
}
