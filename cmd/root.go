package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phkdx/flightplandb-go/config"
	"github.com/phkdx/flightplandb-go/flightplandb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *flightplandb.Client

	appVersion = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fpdb",
	Short: "A CLI for the Flight Plan Database API",
	Long: `fpdb talks to flightplandatabase.com: fetch and search flight plans,
look up airports, navaids, weather and oceanic tracks.

Most commands work without an API key against the lower anonymous quota;
set api.key in the config or FPDB_API_KEY to authenticate.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets version information from build flags
func SetVersion(version, buildTime string) {
	appVersion = version
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client = flightplandb.NewClient(cfg.API.Key, logger,
		flightplandb.WithBaseURL(cfg.API.BaseURL),
		flightplandb.WithUnits(flightplandb.Units(cfg.API.Units)),
		flightplandb.WithTimeout(30*time.Second),
		flightplandb.WithUserAgent("fpdb/"+appVersion),
	)

	if !client.Authenticated() {
		logger.Debug().Msg("No API key configured, using anonymous quota")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when we're actually on a terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// searchOptions assembles pagination options from config and the common
// listing flags.
func searchOptions(sort string, maxResults int) []flightplandb.SearchOption {
	opts := []flightplandb.SearchOption{
		flightplandb.WithPageSize(cfg.Search.PageSize),
	}
	if sort == "" {
		sort = cfg.Search.Sort
	}
	opts = append(opts, flightplandb.WithSort(flightplandb.SortOrder(sort)))
	if maxResults == 0 {
		maxResults = cfg.Search.MaxResults
	}
	if maxResults > 0 {
		opts = append(opts, flightplandb.WithMaxResults(maxResults))
	}
	return opts
}
