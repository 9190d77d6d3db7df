package collage

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Collager/util/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// DefaultExtension is appended to destinations that have no extension.
const DefaultExtension = ".jpg"

// DefaultJPEGQuality is used when SaveOptions.JPEGQuality is out of range.
const DefaultJPEGQuality = 95

// SaveOptions controls Save.
type SaveOptions struct {
	JPEGQuality int
}

// ResolveDestination returns the path Save writes to and the format it uses.
// A path without an extension gets DefaultExtension; an extension imaging
// does not know is kept but encoded as JPEG.
func ResolveDestination(path string) (string, imaging.Format) {
	if filepath.Ext(path) == "" {
		path += DefaultExtension
	}
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return path, imaging.JPEG
	}
	return path, format
}

// Save encodes img to path and returns the final path and its size in bytes.
//
// The image is written to a temporary file next to the destination and
// renamed into place once encoding succeeds, so a failed save leaves no
// partial file behind.
func Save(img image.Image, path string, opts SaveOptions) (string, int64, error) {
	dest, format := ResolveDestination(path)

	quality := opts.JPEGQuality
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	tmp := filepath.Join(filepath.Dir(dest), "."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", 0, &IOError{Op: "encode", Path: dest, Err: err}
	}

	encErr := imaging.Encode(f, img, format, imaging.JPEGQuality(quality))
	closeErr := f.Close()
	if encErr == nil {
		encErr = closeErr
	}
	if encErr != nil {
		os.Remove(tmp)
		return "", 0, &IOError{Op: "encode", Path: dest, Err: encErr}
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", 0, &IOError{Op: "encode", Path: dest, Err: fmt.Errorf("moving into place: %w", err)}
	}

	info, err := os.Stat(dest)
	if err != nil {
		return dest, 0, &IOError{Op: "encode", Path: dest, Err: err}
	}

	log.Printf("Saved collage %s as %s (%s)", dest, format, humanize.Bytes(uint64(info.Size())))
	return dest, info.Size(), nil
}
