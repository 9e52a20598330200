package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/universal-mcp/whatsapp-business/graph"
	"github.com/universal-mcp/whatsapp-business/internal"
	"github.com/universal-mcp/whatsapp-business/internal/config"
	"github.com/universal-mcp/whatsapp-business/mcp"
)

var rootCmd = &cobra.Command{
	Use:   "whatsapp-mcp",
	Short: "An MCP server for the WhatsApp Business Platform API",
	Long: `whatsapp-mcp provides an MCP stdio transport over the WhatsApp Business
Platform Graph API. It processes JSON-RPC requests from stdin, exposing
analytics, phone numbers, QR codes, message templates, webhook subscriptions,
credit lines, commerce settings, and media uploads as callable tools, and
returns JSON-RPC responses to stdout.

The access token is taken from --auth or, if absent, from the environment
variable named by the configuration (WHATSAPP_BUSINESS_API_KEY by default).
1Password secret references (op://vault/item/field) are resolved via the op
CLI.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		if !verbose {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}

		g.Go(func() error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}

			token := auth
			if token == "" {
				token = os.Getenv(cfg.TokenEnv)
			}
			if token != "" {
				resolved, wasRef, err := internal.ResolveSecretReference(ctx, token)
				if err != nil {
					return err
				}
				if wasRef {
					logger.Info("resolved access token from secret reference")
				}
				token = resolved
			}
			if token == "" {
				logger.Warn("no access token configured; requests will be unauthenticated",
					"env", cfg.TokenEnv)
			}

			retryClient := retryablehttp.NewClient()
			retryClient.RetryMax = retries
			retryClient.RetryWaitMin = 1 * time.Second
			retryClient.RetryWaitMax = 30 * time.Second
			retryClient.HTTPClient.Timeout = timeout
			retryClient.Logger = logger

			if rps > 0 {
				retryClient.Backoff = func(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
					// Wait at least 1/rps between requests
					minWait := time.Second / time.Duration(rps)
					if min < minWait {
						min = minWait
					}
					return retryablehttp.DefaultBackoff(min, max, attemptNum, resp)
				}
			}

			client := retryClient.StandardClient()
			client.Transport = &internal.HeaderTransport{
				Base:    client.Transport,
				Headers: http.Header{"User-Agent": []string{"whatsapp-business-mcp/" + version}},
			}

			catalog := graph.DefaultCatalog()
			if extend != "" {
				extra, err := loadExtensionCatalog(ctx, extend, client)
				if err != nil {
					return err
				}
				logger.Info("extended catalog from OpenAPI document", "source", extend, "tools", len(extra))
				catalog = catalog.Merge(extra)
			}

			opts := []mcp.ServerOption{
				mcp.WithCatalog(catalog),
				mcp.WithClient(client),
				mcp.WithConfig(cfg),
				mcp.WithAuth(token),
				mcp.WithLogger(logger),
				mcp.WithServerInfo(mcp.ServerInfo{Name: "whatsapp-business-mcp", Version: version}),
			}
			if baseURL != "" {
				opts = append(opts, mcp.WithBaseURL(baseURL))
			}
			if apiVersion != "" {
				opts = append(opts, mcp.WithAPIVersion(apiVersion))
			}

			server, err := mcp.NewServer(opts...)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}

			transport := mcp.NewStdioTransport(os.Stdin, os.Stdout, os.Stderr)
			return transport.Run(ctx, server.Handle)
		})

		return g.Wait()
	},
}

// loadExtensionCatalog reads an OpenAPI document from a file path or URL and
// converts its operations into additional endpoint definitions
func loadExtensionCatalog(ctx context.Context, source string, client *http.Client) (graph.Catalog, error) {
	var data []byte

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("error downloading OpenAPI document: %w", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading OpenAPI document from %s: %w", source, err)
		}
	} else {
		cleanPath := filepath.Clean(source)
		info, err := os.Stat(cleanPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("OpenAPI document does not exist: %s", cleanPath)
			}
			return nil, fmt.Errorf("error accessing OpenAPI document %s: %w", cleanPath, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("specified path is a directory, not a file: %s", cleanPath)
		}

		data, err = os.ReadFile(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("error reading OpenAPI document %s: %w", cleanPath, err)
		}
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("no OpenAPI document data provided")
	}

	return graph.EndpointsFromOpenAPI(data)
}

var (
	auth       string
	baseURL    string
	apiVersion string
	configPath string
	extend     string
	verbose    bool
	retries    int
	timeout    time.Duration
	rps        int

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.Flags().StringVar(&auth, "auth", "", "Access token or op:// secret reference (falls back to the configured environment variable)")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Graph API base URL (default https://graph.facebook.com)")
	rootCmd.Flags().StringVar(&apiVersion, "api-version", "", "Graph API version used when a caller omits api_version (e.g. 'v16.0')")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	rootCmd.Flags().StringVar(&extend, "extend", "", "OpenAPI document (path or URL) whose operations extend the builtin catalog")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.Flags().IntVar(&retries, "retries", 0, "Maximum number of transport-level retries for failed requests")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "HTTP request timeout")
	rootCmd.Flags().IntVarP(&rps, "rps", "r", 0, "Maximum requests per second (0 for no limit)")

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
