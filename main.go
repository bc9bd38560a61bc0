package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	api "github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/config"
)

// cfg holds the environment after .env has been loaded.
var cfg map[string]string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portfolio-backend",
	Short: "Portfolio projects API",
	Long: `portfolio-backend serves the portfolio projects API backed by a SQLite file.

Running it without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
		cfg = config.New()
		setupLogging(cfg, os.Stderr)
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info().Msg("Initializing app...")

	currentDB, _, err := openDatabase(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer currentDB.Close()

	report, err := currentDB.Initialize(cmd.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error initializing database schema")
		return err
	}

	server, err := api.NewServer(currentDB, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		return err
	}

	log.Info().
		Str("addr", server.Addr).
		Str("database", config.GetString(cfg, "DB_PATH", defaultDBPath)).
		Stringer("migration", report).
		Msg("Portfolio backend ready")

	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(time.Duration(config.GetInt(cfg, "SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second)
	return exitError(fatalErr)
}

// interruptError carries the signal that stopped the server.
type interruptError struct {
	sig os.Signal
}

func (e interruptError) Error() string { return e.sig.String() }

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- interruptError{<-c}
}

// exitError drops the errors that mean a clean stop, so only real failures
// such as a port already in use give a non-zero exit.
func exitError(err error) error {
	var interrupt interruptError
	if err == nil || errors.As(err, &interrupt) || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

