package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/patchwork/deck"
	"github.com/zucenko/patchwork/model"
)

// Load reads the full deck next to the binary, falling back to the basic
// deck like the terminal front end does.
func Load(path string, rng *rand.Rand) []*model.Patch {
	file, err := ebitenutil.OpenFile(path)
	if err != nil {
		log.Printf("failed opening file: %s", err)
		return model.BasicDeck(rng)
	}
	defer file.Close()
	patches, err := deck.Read(file, rng)
	if err != nil || len(patches) == 0 {
		log.Printf("failed reading deck %s: %v", path, err)
		return model.BasicDeck(rng)
	}
	return patches
}
