package collage

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Collager/util"
	"github.com/dixieflatline76/Collager/util/log"
	_ "golang.org/x/image/webp" // Register WebP decoder
	"golang.org/x/sync/errgroup"
)

// SupportedExtensions are the file extensions the loader picks up, compared case-insensitively.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp"}

// LoadOptions controls LoadFolder, LoadFiles and AssembleFiles.
type LoadOptions struct {
	// AutoOrient applies the EXIF orientation tag of JPEG files.
	AutoOrient bool
	// Workers bounds concurrent decodes, and for AssembleFiles also how many
	// decoded images may wait for placement. Zero means GOMAXPROCS.
	Workers int
	// OnDecoded, if set, is called after each file is decoded with the running count.
	// It may be called from several goroutines.
	OnDecoded func(done, total int)
}

// IsSupported reports whether name has a recognised image extension.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ListImages returns the paths of recognised image files directly inside dir.
// Subdirectories are not descended into. Paths come back in lexical filename
// order, which is the order the collage is filled in.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// LoadFolder decodes every recognised image in dir, in ListImages order.
// It returns ErrEmptyImageSet when there is nothing to load and an *IOError
// for the first file that fails to decode.
func LoadFolder(ctx context.Context, dir string, opts LoadOptions) ([]image.Image, error) {
	paths, err := ListImages(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrEmptyImageSet
	}
	return LoadFiles(ctx, paths, opts)
}

// LoadFiles decodes paths concurrently and returns the images in the same order.
func LoadFiles(ctx context.Context, paths []string, opts LoadOptions) ([]image.Image, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyImageSet
	}

	images := make([]image.Image, len(paths))
	done := util.NewSafeCounter()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, path := range paths {
		g.Go(func() error {
			if err := checkContext(ctx); err != nil {
				return err
			}
			img, err := decodeFile(path, opts.AutoOrient)
			if err != nil {
				return err
			}
			images[i] = img
			if opts.OnDecoded != nil {
				opts.OnDecoded(done.Increment(), len(paths))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("Loaded %d images", len(images))
	return images, nil
}

func (o LoadOptions) workers() int {
	if o.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}

func decodeFile(path string, autoOrient bool) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, &IOError{Op: "decode", Path: path, Err: err}
	}
	return img, nil
}

type decoded struct {
	img image.Image
	err error
}

// prefetch decodes paths in the background, at most opts.workers() ahead of
// the consumer, and returns a function that yields image i. Each index must
// be requested exactly once, in order.
func prefetch(ctx context.Context, paths []string, opts LoadOptions) func(i int) (image.Image, error) {
	results := make([]chan decoded, len(paths))
	for i := range results {
		results[i] = make(chan decoded, 1)
	}
	slots := make(chan struct{}, opts.workers())
	done := util.NewSafeCounter()

	go func() {
		for i, path := range paths {
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				return
			}
			go func() {
				img, err := decodeFile(path, opts.AutoOrient)
				if err == nil && opts.OnDecoded != nil {
					opts.OnDecoded(done.Increment(), len(paths))
				}
				results[i] <- decoded{img: img, err: err}
			}()
		}
	}()

	return func(i int) (image.Image, error) {
		select {
		case d := <-results[i]:
			<-slots
			return d.img, d.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
