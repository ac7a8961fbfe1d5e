// bannerctl edits the site's home banner set from the command line: list
// the current order, append images from a directory, remove or move one
// banner, then submit the reconciled set in a single update.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hosanna-web/webclient/boot"
	boardapiclient "github.com/hosanna-web/webclient/delivery/board-api-client"
	"github.com/hosanna-web/webclient/lib/attachment"
	"github.com/hosanna-web/webclient/usecase/session"
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

func main() {
	var (
		configDir = flag.String("config", "config/", "configuration directory")
		env       = flag.String("env", "development", "configuration name")
		username  = flag.String("user", "", "admin username")
		password  = flag.String("pass", "", "admin password")
		addDir    = flag.String("add", "", "append every image in this directory")
		remove    = flag.String("remove", "", "remove the banner with this identifier")
		moveFrom  = flag.Int("from", -1, "move: source position")
		moveTo    = flag.Int("to", -1, "move: destination position")
		apply     = flag.Bool("apply", false, "submit the result instead of printing the plan")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := boot.Load(*configDir, *env)
	if err != nil {
		log.Fatal().Msgf("load config: %v", err)
	}

	client, err := boardapiclient.New(cfg.APIBaseURL)
	if err != nil {
		log.Fatal().Msgf("client: %v", err)
	}

	sess := session.New(client)
	defer sess.Close()

	if _, err := sess.Login(ctx, *username, *password); err != nil {
		log.Fatal().Msgf("login: %v", err)
	}

	remote, err := client.BannerConfig(ctx)
	if err != nil {
		sess.HandleError(err)
		log.Fatal().Msgf("fetch banners: %v", err)
	}

	banners := remote.Banners
	sort.Slice(banners, func(i, j int) bool {
		return banners[i].DisplayOrder < banners[j].DisplayOrder
	})

	set := attachment.NewSet()
	for _, b := range banners {
		set.Append(attachment.Kept(b.Identifier, b.ImageURL, 0))
	}
	guard := attachment.NewGuard(cfg.UploadLimitBytes, set)

	if *remove != "" {
		removed := false
		for position, it := range set.Items() {
			if it.Identifier == *remove {
				if err := set.RemoveAt(position); err != nil {
					log.Fatal().Msgf("remove: %v", err)
				}
				removed = true
				break
			}
		}
		if !removed {
			log.Fatal().Msgf("no banner with identifier %v", *remove)
		}
	}

	if *moveFrom >= 0 || *moveTo >= 0 {
		if err := set.MoveTo(*moveFrom, *moveTo); err != nil {
			log.Fatal().Msgf("move %v -> %v: %v", *moveFrom, *moveTo, err)
		}
	}

	if *addDir != "" {
		sources, err := collectImages(*addDir)
		if err != nil {
			log.Fatal().Msgf("scan %v: %v", *addDir, err)
		}
		if len(sources) == 0 {
			log.Fatal().Msgf("no images under %v", *addDir)
		}

		loader := attachment.Loader{}
		items, err := loader.Load(ctx, sources...)
		if err != nil {
			log.Fatal().Msgf("read images: %v", err)
		}
		if err := guard.Admit(set, items...); err != nil {
			log.Fatal().Msgf("%v", err)
		}
		log.Info().Msgf("loaded %v image(s), %v total", len(items), attachment.FormatBytes(set.TotalBytes()))
	}

	for position, it := range set.Items() {
		name := it.Identifier
		if it.IsPending() {
			name = "+" + it.Name
		}
		log.Info().Msgf("  %2d  %v", position, name)
	}

	if !*apply {
		log.Info().Msgf("dry run, pass -apply to submit")
		return
	}

	// banner update is full state, both pairs always go on the wire
	payload := attachment.EncodeKeepNew(set, attachment.Options{})
	if err := client.UpdateBannerConfig(ctx, payload); err != nil {
		sess.HandleError(err)
		log.Fatal().Msgf("update banners: %v", err)
	}
	log.Info().Msgf("banner set updated: %v kept, %v new", len(payload.KeepIdentifiers), len(payload.NewFiles))
}

func collectImages(dir string) ([]attachment.Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sources []attachment.Source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		sources = append(sources, attachment.FileSource(filepath.Join(dir, e.Name())))
	}
	return sources, nil
}
