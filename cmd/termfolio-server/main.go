package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/termfolio/chat"
	"github.com/lixenwraith/termfolio/config"
	"github.com/lixenwraith/termfolio/server"
	"github.com/lixenwraith/termfolio/shell"
	"github.com/lixenwraith/termfolio/status"
)

var (
	envFlag    = flag.String("env", ".env", "Environment file, missing is fine")
	portFlag   = flag.String("port", "", "Listen port, overrides PORT")
	staticFlag = flag.String("static", "", "Static directory, overrides STATIC_DIR")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *portFlag != "" {
		cfg.Port = *portFlag
	}
	if *staticFlag != "" {
		cfg.StaticDir = *staticFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	table := chat.DefaultTable()
	if cfg.TopicsFile != "" {
		if table, err = chat.LoadTable(cfg.TopicsFile); err != nil {
			log.Fatalf("topics: %v", err)
		}
	}
	commands := shell.DefaultTable()
	if cfg.CommandsFile != "" {
		if commands, err = shell.LoadTable(cfg.CommandsFile); err != nil {
			log.Fatalf("commands: %v", err)
		}
	}

	srv := server.New(server.Options{
		Addr:      cfg.Addr(),
		StaticDir: cfg.StaticDir,
		AccessLog: os.Stdout,
		Metrics:   status.NewRegistry(),
		Commands:  shell.NewInterpreter(commands, nil),
	}, chat.NewResponder(table, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
