package main

import (
	"bufio"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/patchwork/deck"
	"github.com/zucenko/patchwork/engine"
	"github.com/zucenko/patchwork/server"
)

type Server struct {
	router *way.Router
	Hub    *server.Hub
}

func main() {
	mode := flag.String("mode", "", "game mode, basic or full (asked when empty)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "shuffle seed")
	watch := flag.Bool("watch", false, "stream snapshots to spectators on $PORT"+server.URI_WATCH)
	deckPath := flag.String("deck", getenv("PATCHWORK_DECK", deck.DefaultPath), "deck file for the full mode")
	verbose := flag.Bool("v", false, "log turn details")
	flag.Parse()

	log.SetLevel(log.WarnLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	in := newPrompt(bufio.NewScanner(os.Stdin), os.Stdout)
	variant, err := askVariant(in, *mode)
	if err != nil {
		log.Fatalln(err)
	}

	cfg := engine.Config{Variant: variant, Seed: *seed, Log: log.StandardLogger()}
	if variant == engine.Full {
		cfg.Deck = deck.LoadOrBasic(*deckPath, rand.New(rand.NewSource(*seed)), log.StandardLogger())
	}
	if *watch {
		srvCfg := server.ConfigFromEnv()
		s := Server{Hub: server.NewHub(srvCfg)}
		go s.Hub.Loop()
		s.routes()
		go func() {
			log.Fatalln(http.ListenAndServe(":"+srvCfg.Port, s.router))
		}()
		cfg.Observer = s.Hub
	}

	game := engine.New(cfg)
	if err := play(game, in); err != nil {
		log.Fatalln(err)
	}
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
