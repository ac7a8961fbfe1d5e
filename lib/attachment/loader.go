package attachment

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	// picked .webp files should still decode for previews
	_ "golang.org/x/image/webp"
)

// Source is one picked local file.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource is an os-backed Source.
type FileSource string

func (f FileSource) Name() string {
	return filepath.Base(string(f))
}

func (f FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

const previewEdge = 320

// Loader turns picked files into pending items. Reads run concurrently and
// may complete in any order; every read writes to the slot of its own
// source, so a slow first file can never receive the preview of a fast
// second one.
type Loader struct {
	// Preview enables thumbnail data URL generation for image content.
	Preview bool
}

// Load reads every source and returns one pending item per source, in
// source order. The whole batch fails together so a partial selection is
// never handed to the caller.
func (l *Loader) Load(ctx context.Context, sources ...Source) ([]Item, error) {
	items := make([]Item, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := src.Open()
			if err != nil {
				return err
			}
			defer r.Close()

			data, err := io.ReadAll(r)
			if err != nil {
				return err
			}

			it := Pending(src.Name(), data)
			if l.Preview {
				it.PreviewURL = previewDataURL(data)
			}
			items[i] = it
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// previewDataURL renders a small JPEG thumbnail as a data URL, or "" when
// the payload is not a decodable image.
func previewDataURL(data []byte) string {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return ""
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Debug().Msgf("preview decode failed: %v", err)
		return ""
	}

	thumb := imaging.Fit(img, previewEdge, previewEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		log.Debug().Msgf("preview encode failed: %v", err)
		return ""
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
