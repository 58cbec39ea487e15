package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"telnet-animations/internal/animation"
	"telnet-animations/internal/config"
	"telnet-animations/internal/logging"
	"telnet-animations/internal/server"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.toml", "path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telnet-animations: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogFile)
	defer log.Sync()

	known := make(map[string]bool)
	for _, name := range animation.Names() {
		known[name] = true
	}
	for _, l := range cfg.Listeners {
		if !known[l.Animation] {
			log.Warnf("listener %s: unknown animation %q, clients will get a fallback message", l.ListenAddr, l.Animation)
		}
	}

	srv := server.New(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AdminAddr != "" {
		admin := &http.Server{Addr: cfg.AdminAddr, Handler: srv.AdminMux()}
		go func() {
			log.Infof("admin endpoint on http://%s/", cfg.AdminAddr)
			if err := admin.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Errorf("admin listener: %v", err)
			}
		}()
		go func() {
			<-ctx.Done()
			admin.Close()
		}()
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		log.Fatalf("serve: %v", err)
	}
	log.Info("shut down")
}
