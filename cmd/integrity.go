package cmd

import (
	"context"
	"fmt"

	"figurine-manager/feature/integrity"
	"figurine-manager/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, rosters and database",
	Long:  `Checks the bucket folder structure, parses every stored roster and compares the collection tables with the expected schema.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket and its folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// rostersCmd represents the integrity rosters command
var rostersCmd = &cobra.Command{
	Use:   "rosters",
	Short: "Check that every stored roster can be read",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check integrity of the collection database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, rostersCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runRosters, runServer bool) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	logg := e.logger
	defer logg.Sync()

	store, err := e.storage()
	if err != nil {
		return err
	}

	// Connect to Database (Optional unless the server check runs)
	var db *gorm.DB
	if runServer {
		if conn, err := e.connect(); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	svc := integrity.NewService(integrity.Options{
		Client:  store,
		Bucket:  e.cfg.Storage.Bucket,
		Region:  e.cfg.Storage.Region,
		Folders: e.cfg.Reconcile.Folders(),
		Rosters: e.rosterProvider(store, 0),
		DB:      db,
		Logger:  logg,
	})
	failed := false

	if runStructure {
		logg.Info("Checking folder structure...", zap.String("bucket", e.cfg.Storage.Bucket))
		report, err := svc.CheckStructure(ctx, fixFlag)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch report.Status {
		case checks.StructureOK:
			logg.Info("Structure is intact.")
		case checks.StructureFixed:
			logg.Info("Structure fixed successfully.", zap.Strings("created", report.Created))
		default:
			failed = true
			logg.Warn("Structure incomplete", zap.String("status", report.Status), zap.Strings("missing", report.Missing))
			logg.Info("Run 'integrity structure --fix' to create the bucket and missing folders.")
		}
	}

	if runRosters {
		logg.Info("Checking rosters...")
		report, err := svc.CheckRosters(ctx)
		if err != nil {
			return fmt.Errorf("roster check failed: %w", err)
		}

		logg.Info("Rosters checked", zap.Int("total", report.Total), zap.Int("valid", len(report.Valid)))
		for key, problem := range report.Invalid {
			failed = true
			logg.Warn("Invalid roster", zap.String("roster", key), zap.String("error", problem))
		}
	}

	if runServer {
		logg.Info("Checking server schema integrity...", zap.String("driver", e.cfg.Database.Driver))
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			failed = true
		} else if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
		} else {
			failed = true
			logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
