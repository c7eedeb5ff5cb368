package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Garsondee/Void-Runner/internal/config"
	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/game"
	"github.com/Garsondee/Void-Runner/internal/viewer"
)

func main() {
	var configPath, contentPath, roomsPath string
	var startRoom int
	var zoom float64
	flag.StringVar(&configPath, "config", "", "tuning YAML (default $"+config.EnvPath+")")
	flag.StringVar(&contentPath, "content", "", "content table YAML overlay")
	flag.StringVar(&roomsPath, "rooms", "", "room set YAML (default built-in demo rooms)")
	flag.IntVar(&startRoom, "room", 0, "room to start in")
	flag.Float64Var(&zoom, "zoom", 1, "world zoom")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	stats := content.Default()
	if contentPath != "" {
		if stats, err = content.Load(contentPath); err != nil {
			log.Fatal(err)
		}
	}
	rooms := game.DemoRooms()
	if roomsPath != "" {
		if rooms, err = game.LoadRoomSet(roomsPath); err != nil {
			log.Fatal(err)
		}
	}

	var metrics *game.Metrics
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		metrics = game.NewMetrics(reg)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.Printf("metrics on %s/metrics", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	s, err := game.NewSpace(game.Setup{
		Config:  cfg,
		Stats:   stats,
		Rooms:   rooms,
		Log:     game.NewSimLog(false),
		Metrics: metrics,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := s.LoadRoom(startRoom); err != nil {
		log.Fatal(err)
	}

	opts := viewer.DefaultOptions()
	opts.Zoom = zoom
	opts.StartRoom = startRoom
	ebiten.SetWindowTitle("Void Runner")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(cfg.Sim.TickRate)
	if err := ebiten.RunGame(viewer.New(s, opts)); err != nil {
		log.Fatal(err)
	}
}
