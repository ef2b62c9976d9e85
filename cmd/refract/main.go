package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/refract-dev/refract/internal/mcp"
)

const version = "0.1.0"

func main() {
	var (
		workspaceFlag = flag.String("workspace", "", "root workspace directory (defaults to current directory)")
		portFlag      = flag.Int("port", 0, "HTTP port to listen on (0 for stdio)")
		debugFlag     = flag.Bool("debug", false, "enable debug logging")
		versionFlag   = flag.Bool("version", false, "show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("refract v%s\n", version)
		fmt.Println("Model Context Protocol server for multi-language refactoring")
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	workspace := *workspaceFlag
	if workspace == "" {
		var err error
		workspace, err = os.Getwd()
		if err != nil {
			logger.Error("could not determine current directory", "err", err)
			os.Exit(1)
		}
	}
	workspace, err := filepath.Abs(workspace)
	if err != nil {
		logger.Error("could not resolve workspace path", "path", *workspaceFlag, "err", err)
		os.Exit(1)
	}
	if info, err := os.Stat(workspace); err != nil || !info.IsDir() {
		logger.Error("workspace is not a directory", "path", workspace)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := internalmcp.NewServer(workspace, logger)
	defer state.Close()
	if err := state.StartWatcher(ctx); err != nil {
		logger.Warn("watcher unavailable, external edits will not be flagged", "err", err)
	}

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "refract", Version: version}, nil)
	internalmcp.RegisterAllTools(server, state)

	logger.Info("starting refract", "workspace", workspace, "version", version)

	if *portFlag == 0 {
		if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
		return
	}

	handler := mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server { return server }, nil)
	addr := fmt.Sprintf(":%d", *portFlag)
	logger.Info("listening", "addr", addr)

	httpServer := &http.Server{Addr: addr, Handler: handler}
	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("HTTP server failed", "err", err)
		os.Exit(1)
	}
}
