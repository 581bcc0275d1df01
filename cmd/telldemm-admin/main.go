// ABOUTME: Entry point for the telldemm-admin console server
// ABOUTME: Serves the admin dashboard in front of the Telldemm backend

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/telldemm/admin-console/internal/api"
	"github.com/telldemm/admin-console/internal/config"
	"github.com/telldemm/admin-console/internal/session"
	"github.com/telldemm/admin-console/internal/store"
	"github.com/telldemm/admin-console/internal/webadmin"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
 _       _ _     _
| |_ ___| | | __| | ___ _ __ ___  _ __ ___
| __/ _ \ | |/ _' |/ _ \ '_ ' _ \| '_ ' _ \
| ||  __/ | | (_| |  __/ | | | | | | | | | |
 \__\___|_|_|\__,_|\___|_| |_| |_|_| |_| |_|  admin
`

// getConfigPath returns the path to the console config file.
// Priority: TELLDEMM_ADMIN_CONFIG env var > XDG_CONFIG_HOME/telldemm/admin.yaml > ~/.config/telldemm/admin.yaml
func getConfigPath() string {
	if envPath := os.Getenv("TELLDEMM_ADMIN_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "admin.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "telldemm", "admin.yaml")
}

// loadConfig loads the config file, falling back to built-in defaults
// when no file exists. A malformed file is still an error.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: telldemm-admin <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve      Start the admin console server")
		fmt.Println("  init       Create a new config file interactively")
		fmt.Println("  health     Check console health")
		fmt.Println("  version    Print the version")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	case "health":
		err = runHealth(ctx)
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	// Version info
	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	// Load configuration
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	// Startup info
	green := color.New(color.FgGreen)

	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:     %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Backend:  %s\n", cfg.API.BaseURL)
	green.Print("    ▶ ")
	fmt.Printf("Database: %s\n", cfg.Database.Path)
	fmt.Println()

	logger.Info("starting telldemm-admin",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
		"backend", cfg.API.BaseURL,
	)

	// Audit store
	auditStore, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening audit store: %w", err)
	}
	defer auditStore.Close()

	// Credential store: the session cookie set at login
	sessions := session.NewCookieStore(cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.Secure)

	// Backend client reads the credential from the request context,
	// where the gate put it.
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, session.TokenFromContext,
		api.WithUnauthorizedHook(func(ctx context.Context) {
			logger.Info("backend rejected credential")
		}),
	)

	// Console handlers
	admin := webadmin.New(client, sessions, auditStore, webadmin.Config{
		LoginPath:     cfg.Gate.LoginPath,
		SecureCookies: cfg.Session.Secure,
	})

	mux := http.NewServeMux()
	admin.RegisterRoutes(mux)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	// The gate wraps the whole mux: one authorization checkpoint for
	// every route.
	policy := session.DefaultPolicy()
	policy.LoginPath = cfg.Gate.LoginPath
	policy.Strict = cfg.Gate.Strict
	policy.PublicPrefixes = append([]string{"/health"}, cfg.Gate.PublicPrefixes...)

	gate := session.NewGate(sessions, client, policy)
	gate.SetAuditor(admin)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           gate.Middleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	// Format timestamp
	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	// Colorize level
	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	// Print message
	buf.WriteString(r.Message)

	// Print handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	// Print record attrs
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Print(buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func runHealth(ctx context.Context) error {
	configPath := getConfigPath()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr := cfg.Server.HTTPAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	url := fmt.Sprintf("http://%s/health", addr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}

func runInit() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("telldemm-admin configuration setup")
	fmt.Println("==================================")
	fmt.Println()

	defaultConfigPath := getConfigPath()

	// Output filename
	outputFile := prompt(reader, "Config file path", defaultConfigPath)

	// Check if file exists
	if _, err := os.Stat(outputFile); err == nil {
		overwrite := prompt(reader, "File exists. Overwrite?", "no")
		if strings.ToLower(overwrite) != "yes" && strings.ToLower(overwrite) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Server configuration
	fmt.Println("\n--- Server Configuration ---")
	httpAddr := prompt(reader, "HTTP address", ":8080")

	// Backend
	fmt.Println("\n--- Backend Configuration ---")
	baseURL := prompt(reader, "Backend base URL", config.DefaultAPIBase)
	timeout := prompt(reader, "Request timeout", "10s")

	// Session
	fmt.Println("\n--- Session Configuration ---")
	cookieName := prompt(reader, "Session cookie name", "auth_token")
	ttl := prompt(reader, "Session TTL", "24h")
	secureStr := prompt(reader, "Secure cookies (HTTPS only)?", "yes")
	secure := strings.ToLower(secureStr) == "yes" || strings.ToLower(secureStr) == "y"

	// Gate
	fmt.Println("\n--- Gate Configuration ---")
	strictStr := prompt(reader, "Strict mode (credential-check static assets)?", "no")
	strict := strings.ToLower(strictStr) == "yes" || strings.ToLower(strictStr) == "y"

	// Database
	fmt.Println("\n--- Database Configuration ---")
	dbPath := prompt(reader, "SQLite audit database path", "data/admin-console.db")

	// Logging
	fmt.Println("\n--- Logging Configuration ---")
	logLevel := prompt(reader, "Log level (debug/info/warn/error)", "info")
	logFormat := prompt(reader, "Log format (text/json)", "text")

	// Generate config
	var cfg strings.Builder
	cfg.WriteString("# telldemm-admin configuration\n")
	cfg.WriteString("# Generated by telldemm-admin init\n\n")

	cfg.WriteString("server:\n")
	cfg.WriteString(fmt.Sprintf("  http_addr: \"%s\"\n", httpAddr))
	cfg.WriteString("\n")

	cfg.WriteString("api:\n")
	cfg.WriteString(fmt.Sprintf("  base_url: \"%s\"\n", baseURL))
	cfg.WriteString(fmt.Sprintf("  timeout: \"%s\"\n", timeout))
	cfg.WriteString("\n")

	cfg.WriteString("session:\n")
	cfg.WriteString(fmt.Sprintf("  cookie_name: \"%s\"\n", cookieName))
	cfg.WriteString(fmt.Sprintf("  ttl: \"%s\"\n", ttl))
	cfg.WriteString(fmt.Sprintf("  secure: %t\n", secure))
	cfg.WriteString("\n")

	cfg.WriteString("gate:\n")
	cfg.WriteString(fmt.Sprintf("  strict: %t\n", strict))
	cfg.WriteString("  login_path: \"/login\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("database:\n")
	cfg.WriteString(fmt.Sprintf("  path: \"%s\"\n", dbPath))
	cfg.WriteString("\n")

	cfg.WriteString("logging:\n")
	cfg.WriteString(fmt.Sprintf("  level: \"%s\"\n", logLevel))
	cfg.WriteString(fmt.Sprintf("  format: \"%s\"\n", logFormat))

	// Ensure config directory exists
	configDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write config file
	if err := os.WriteFile(outputFile, []byte(cfg.String()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	// Ensure data directory exists
	dataDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Println("\nTo start the server:")
	fmt.Printf("  telldemm-admin serve\n")

	return nil
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		// On EOF or error, return default
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}
