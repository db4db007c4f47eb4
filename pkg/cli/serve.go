package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/getstubd/stubd/pkg/config"
	"github.com/getstubd/stubd/pkg/engine"
	"github.com/getstubd/stubd/pkg/fixture"
	"github.com/getstubd/stubd/pkg/schema"
)

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	configPath   string
	specPath     string
	fixturesPath string
	host         string
	port         int
	printURL     bool
	noValidate   bool
	logLevel     string
	logFormat    string
}

// serveFlagVals is the package-level instance bound to cobra flags.
var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stub server",
	Long: `Start the stub server in the foreground until SIGINT/SIGTERM.

The server needs an OpenAPI spec with x-resourceId tags and a fixture
library. Both can come from a config file or directly from flags; flags
win over the config file.`,
	Example: `  # Serve from explicit spec and fixtures
  stubd serve --spec api.yaml --fixtures fixtures.json

  # Serve from a config file
  stubd serve --config stubd.yaml

  # Auto-assign a port and print the base URL for the test harness
  stubd serve --spec api.yaml --fixtures fixtures/ --port 0 --print-url`,
	RunE: runServe,
}

func init() {
	f := &serveFlagVals

	serveCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to stubd config file (YAML or JSON)")
	serveCmd.Flags().StringVar(&f.specPath, "spec", "", "Path to the OpenAPI document")
	serveCmd.Flags().StringVar(&f.fixturesPath, "fixtures", "", "Path to the fixture file or directory")
	serveCmd.Flags().StringVar(&f.host, "host", "", "Bind address (default 127.0.0.1)")
	serveCmd.Flags().IntVarP(&f.port, "port", "p", -1, "HTTP server port (0 = OS auto-assign)")
	serveCmd.Flags().BoolVar(&f.printURL, "print-url", false, "Print the base URL to stdout on startup")
	serveCmd.Flags().BoolVar(&f.noValidate, "no-validate", false, "Skip request validation against the spec")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := buildConfig(&serveFlagVals)
	if err != nil {
		return err
	}

	spec, err := schema.Load(cfg.SpecFile)
	if err != nil {
		return fmt.Errorf("failed to load API spec: %w", err)
	}

	store, err := fixture.LoadFromFile(cfg.Fixtures)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	srv, err := engine.NewServer(cfg, spec, store)
	if err != nil {
		return fmt.Errorf("failed to build stub server: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start stub server: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if serveFlagVals.printURL {
		fmt.Println(srv.URL())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return nil
}

// buildConfig merges the optional config file with command-line flags.
// Flags win.
func buildConfig(f *serveFlags) (*config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		if _, err := os.Stat(f.configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", f.configPath)
		}
		loaded, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if f.specPath != "" {
		cfg.SpecFile = f.specPath
	}
	if f.fixturesPath != "" {
		cfg.Fixtures = f.fixturesPath
	}
	if f.host != "" {
		cfg.Host = f.host
	}
	if f.port >= 0 {
		cfg.Port = f.port
	}
	if f.noValidate {
		cfg.ValidateRequests = false
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
