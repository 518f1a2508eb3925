// Command genassets writes the generated placeholder sheets to disk as PNGs,
// as a starting point for anyone replacing them with real art. The game
// itself never needs these files; it regenerates the same images in memory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/Gautam-J/LCC-S2/assets"
)

func main() {
	out := flag.String("out", "art", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("genassets: %v", err)
	}

	files := map[string]image.Image{
		"terrain.png": assets.PlaceholderTerrainSheet(),
		"enemies.png": assets.PlaceholderEnemySheet(),
	}
	for i := 0; i < 3; i++ {
		files[fmt.Sprintf("cloud%d.png", i+1)] = assets.PlaceholderCloud(i)
	}

	for name, img := range files {
		path := filepath.Join(*out, name)
		if err := write(path, img); err != nil {
			log.Fatalf("genassets: %v", err)
		}
		fmt.Println("wrote", path)
	}
}

func write(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
