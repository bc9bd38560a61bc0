package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

const defaultExportPath = "data/projects.json"

var (
	// migrateReport prints model/table column mismatches after migrating
	migrateReport bool
	exportOut     string
	sitemapOut    string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the projects table and exit",
	Long: `Create the projects table when absent and add any missing columns.

Examples:
  # Migrate the database named by DB_PATH
  portfolio-backend migrate

  # Also compare the table against the Project model
  portfolio-backend migrate --report`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the static projects.json snapshot",
	Long: `Write every project, newest first, to a JSON file for the static site.

Examples:
  # Write to EXPORT_PATH (default data/projects.json)
  portfolio-backend export

  # Write elsewhere and also emit a sitemap (needs BASE_URL)
  portfolio-backend export --out public/data/projects.json --sitemap public/sitemap.xml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateReport, "report", false, "print a column mismatch report")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default EXPORT_PATH or "+defaultExportPath+")")
	exportCmd.Flags().StringVar(&sitemapOut, "sitemap", "", "also write a sitemap to this path")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	currentDB, db, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer currentDB.Close()

	report, err := currentDB.Initialize(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migration: %s\n", report)
	for column, stepErr := range report.Failed {
		fmt.Fprintf(cmd.OutOrStdout(), "  failed %s: %v\n", column, stepErr)
	}

	if !migrateReport {
		return nil
	}

	reports, err := models.ReportModels(db.WithContext(cmd.Context()), &models.Project{})
	if err != nil {
		return err
	}
	models.WriteColumnReport(cmd.OutOrStdout(), reports)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	currentDB, _, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer currentDB.Close()

	if _, err := currentDB.Initialize(cmd.Context()); err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = config.GetString(cfg, "EXPORT_PATH", defaultExportPath)
	}

	n, err := services.ExportProjects(cmd.Context(), currentDB.ProjectRepo(), out)
	if err != nil {
		log.Error().Err(err).Str("path", out).Msg("Error exporting projects")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d projects to %s\n", n, out)

	if sitemapOut == "" {
		return nil
	}
	n, err = services.ExportSitemap(cmd.Context(), currentDB.ProjectRepo(), services.GetBaseURL(cfg), sitemapOut)
	if err != nil {
		if errs.IsEnvironmentVariableError(err) {
			log.Error().Msg("Set BASE_URL to the public site address to build sitemap links")
		}
		log.Error().Err(err).Str("path", sitemapOut).Msg("Error exporting sitemap")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d sitemap entries to %s\n", n, sitemapOut)
	return nil
}
