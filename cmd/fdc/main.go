// Command fdc queries the USDA FoodData Central API from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fdcapi/fdcapi/client"
	"github.com/fdcapi/fdcapi/internal/config"
)

// globalFlags are the persistent flags shared by every sub-command.
type globalFlags struct {
	apiKey      string
	baseURL     string
	timeout     time.Duration
	debug       bool
	keyInHeader bool

	cfg *config.Config
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "fdc",
		Short:         "Query the USDA FoodData Central API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger(cmd.ErrOrStderr())
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if g.debug {
				cfg.LogLevel = zerolog.DebugLevel
				cfg.Client.Debug = true
			}
			cfg.Init()
			g.cfg = cfg
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.apiKey, "api-key", "", "FDC API key (default $FDC_API_KEY)")
	pf.StringVar(&g.baseURL, "base-url", "", "Base URL of the FDC API (default $FDC_BASE_URL)")
	pf.DurationVar(&g.timeout, "timeout", 0, "Per-request timeout (default $FDC_HTTP_TIMEOUT)")
	pf.BoolVarP(&g.debug, "debug", "d", false, "Log HTTP traffic at debug level")
	pf.BoolVar(&g.keyInHeader, "key-in-header", false, "Send the API key as X-Api-Key instead of a query parameter")

	rootCmd.AddCommand(newSearchCmd(g))
	rootCmd.AddCommand(newFoodCmd(g))
	rootCmd.AddCommand(newFoodsCmd(g))
	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newSummaryCmd(g))
	rootCmd.AddCommand(newSpecCmd(g))

	return rootCmd
}

// newClient builds a client from the environment with flag overrides.
func (g *globalFlags) newClient() (*client.Client, error) {
	cc := g.cfg.Client
	if g.apiKey != "" {
		cc.APIKey = g.apiKey
	}
	if g.baseURL != "" {
		cc.BaseURL = g.baseURL
	}
	if g.timeout > 0 {
		cc.HTTPTimeout = g.timeout
	}
	if g.keyInHeader {
		cc.APIKeyHeader = true
	}
	if cc.APIKey == "" {
		return nil, fmt.Errorf("no API key: pass --api-key or set FDC_API_KEY (DEMO_KEY works for light use)")
	}
	return client.NewFromConfig(cc)
}

// run executes fn with a fresh client and prints the result; []byte results
// are written verbatim, anything else as indented JSON.
func (g *globalFlags) run(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) (any, error)) error {
	c, err := g.newClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx := cmd.Context()
	start := time.Now()
	out, err := fn(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Debug().Err(err).Str("command", cmd.Name()).Dur("elapsed", elapsed).Msg("request failed")
		return err
	}
	log.Debug().Str("command", cmd.Name()).Dur("elapsed", elapsed).Msg("request completed")

	if raw, ok := out.([]byte); ok {
		_, err := cmd.OutOrStdout().Write(raw)
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
