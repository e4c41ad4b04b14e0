package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aspelund/memexfs/config"
	"github.com/aspelund/memexfs/ignore"
	"github.com/aspelund/memexfs/register"
	"github.com/aspelund/memexfs/server"
	"github.com/aspelund/memexfs/store"
	"github.com/aspelund/memexfs/tools"
	"github.com/aspelund/memexfs/watcher"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// excludePatterns is a repeatable CLI flag for custom ignore patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run("memexfs", os.Args[2:])
		return
	}

	var rootDir string
	var configFile string
	var maxFileSizeBytes int64
	var logLevel string
	var logFile string
	var noWatch bool
	var excludes excludePatterns

	flag.StringVar(&rootDir, "root", "", "Knowledge base root directory (default: current working directory)")
	flag.StringVar(&configFile, "config", "", "Path to YAML config file")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.Int64Var(&maxFileSizeBytes, "max-file-size", 0, "Maximum file size in bytes (default: 1MB)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: memexfs.log in the root directory)")
	flag.BoolVar(&noWatch, "no-watch", false, "Disable the filesystem watcher (serve a fixed snapshot)")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override file values.
	if rootDir != "" {
		cfg.Docs.Root = rootDir
	}
	if len(excludes) > 0 {
		cfg.Docs.Exclude = append(cfg.Docs.Exclude, excludes...)
	}
	if maxFileSizeBytes > 0 {
		cfg.Docs.MaxFileSizeBytes = maxFileSizeBytes
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	if noWatch {
		cfg.Watch.Enabled = false
	}

	if cfg.Docs.Root == "" {
		cfg.Docs.Root, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Docs.Root, _ = filepath.Abs(cfg.Docs.Root)

	// Default log file lives next to the corpus; stdout stays reserved for
	// the MCP stdio transport.
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(cfg.Docs.Root, "memexfs.log")
	}
	logger := setupLogger(cfg.Logging.Level, cfg.Logging.File)

	logger.Info("starting memexfs",
		"root", cfg.Docs.Root,
		"maxFileSize", cfg.Docs.MaxFileSizeBytes,
		"watch", cfg.Watch.Enabled,
	)

	startTime := time.Now()

	matcher := ignore.NewMatcher(ignore.Options{
		RootDir:          cfg.Docs.Root,
		CustomPatterns:   cfg.Docs.Exclude,
		MaxFileSizeBytes: cfg.Docs.MaxFileSizeBytes,
	})

	initialStore, err := buildStore(cfg.Docs.Root, matcher, logger)
	if err != nil {
		logger.Error("failed to build document store", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	handle := store.NewHandle(initialStore)

	logger.Info("initial load complete",
		"documents", initialStore.DocumentCount(),
		"tokens", initialStore.TokenCount(),
		"duration", time.Since(startTime),
	)

	if cfg.Watch.Enabled {
		fileWatcher, err := watcher.NewWatcher(cfg.Docs.Root, time.Duration(cfg.Watch.Debounce), matcher, logger)
		if err != nil {
			logger.Warn("failed to start file watcher, serving a fixed snapshot", "error", err)
		} else {
			go fileWatcher.Start()
			go runRebuilds(fileWatcher.Changes(), handle, cfg.Docs.Root, matcher, logger)
			defer fileWatcher.Close()
		}
	}

	grepHandler := &tools.GrepHandler{Store: handle, Logger: logger}
	readHandler := &tools.ReadHandler{Store: handle, Logger: logger}
	lsHandler := &tools.LsHandler{Store: handle, Logger: logger}
	statusHandler := &tools.StatusHandler{
		Store:     handle,
		StartTime: startTime,
		RootDir:   cfg.Docs.Root,
		Logger:    logger,
	}

	mcpServer := server.Setup(grepHandler, readHandler, lsHandler, statusHandler)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// setupLogger creates an slog.Logger writing to a file or stderr.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
