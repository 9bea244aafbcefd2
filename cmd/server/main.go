package main

import (
	"context"
	"flag"
	"net/http"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/redis/go-redis/v9"

	"github.com/youruser/deckcodes/internal/api"
	"github.com/youruser/deckcodes/internal/cards"
	"github.com/youruser/deckcodes/internal/config"
	"github.com/youruser/deckcodes/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		glog.Fatal(err)
	}

	// The catalog only adds names and art, so run without it if needed.
	catalog, err := cards.LoadCatalogFromDataDir(cfg.Catalog.DataDir)
	if err != nil {
		glog.Warningf("failed to load card catalog: %v", err)
	} else {
		glog.Infof("loaded %d cards from %s", catalog.Len(), cfg.Catalog.DataDir)
	}

	var shares api.DeckStore
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		s := store.New(client, cfg.Redis.TTL())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.Ping(ctx); err != nil {
			glog.Warningf("redis at %s not reachable yet: %v", cfg.Redis.Addr, err)
		}
		cancel()
		shares = s
		glog.Infof("deck sharing enabled (ttl %v)", cfg.Redis.TTL())
	}

	r := api.NewRouter(api.NewHandler(catalog, shares, cfg.Image.QRSize))

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	glog.Infof("starting server on http://localhost%s", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		glog.Fatal(err)
	}
}
