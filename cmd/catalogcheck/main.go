// Catalog checker: reports titles whose media or trailer will not play.
package main

import (
	"log"
	"os"

	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/config"
	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	path := cfg.CatalogPath()
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cat, err := catalog.Load(path, cfg.MediaDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Checking %d titles from %s", len(cat.Titles), path)

	problems := 0
	for i := range cat.Titles {
		t := &cat.Titles[i]
		if t.Trailer != "" {
			if _, ok := embed.ExtractID(t.Trailer); !ok {
				log.Printf("  %s: trailer %q is not a video id or URL", t.ID, t.Trailer)
				problems++
			}
		}
		for _, media := range mediaPaths(t) {
			if !checkMedia(t.ID, media) {
				problems++
			}
		}
	}

	if problems > 0 {
		log.Fatalf("%d problems found", problems)
	}
	log.Println("Catalog OK")
}

func mediaPaths(t *catalog.Title) []string {
	if t.Kind == catalog.KindMovie {
		if t.Media == "" {
			return nil
		}
		return []string{t.Media}
	}
	var paths []string
	for _, s := range t.Seasons {
		for _, ep := range s.Episodes {
			if ep.Media != "" {
				paths = append(paths, ep.Media)
			}
		}
	}
	return paths
}

func checkMedia(id, path string) bool {
	if !player.IsMediaFile(path) {
		log.Printf("  %s: %s has an unsupported extension", id, path)
		return false
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("  %s: %v", id, err)
		return false
	}
	if info, err := player.ReadInfo(path); err == nil {
		log.Printf("  %s: %s (%s)", id, info.Title, path)
	} else {
		log.Printf("  %s: %s (untagged)", id, path)
	}
	return true
}
