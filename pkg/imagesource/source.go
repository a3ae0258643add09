// Package imagesource supplies before/after image pairs to the comparison
// view: from two files, from one file and a local effect, or generated.
package imagesource

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/PixelPerfect/util/log"
	"github.com/muesli/smartcrop"
	"golang.org/x/sync/errgroup"
)

// DisplayAspect is the width/height ratio of the comparison area.
const DisplayAspect = 16.0 / 9.0

var (
	// ErrUnknownEffect is returned for effect names that have no filter.
	ErrUnknownEffect = errors.New("unknown effect")
	// ErrNoImages is returned when a provider has nothing to load.
	ErrNoImages = errors.New("no images")
)

// Pair is a before/after couple ready for display.
type Pair struct {
	Before image.Image
	After  image.Image
	Label  string
}

// Provider loads an image pair.
type Provider interface {
	Load(ctx context.Context) (Pair, error)
	// Paths lists the files the pair is built from, for watching.
	Paths() []string
}

// FileProvider loads the before and after images from two files.
type FileProvider struct {
	BeforePath string
	AfterPath  string
	// Aspect crops both images to this ratio; zero keeps them as they are.
	Aspect float64
}

// Load decodes both files concurrently and crops them to the same region.
func (p *FileProvider) Load(ctx context.Context) (Pair, error) {
	if p.BeforePath == "" || p.AfterPath == "" {
		return Pair{}, ErrNoImages
	}

	var before, after image.Image
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		img, err := open(gctx, p.BeforePath)
		before = img
		return err
	})
	g.Go(func() error {
		img, err := open(gctx, p.AfterPath)
		after = img
		return err
	})
	if err := g.Wait(); err != nil {
		return Pair{}, err
	}

	if p.Aspect > 0 {
		var err error
		before, after, err = cropPair(ctx, before, after, p.Aspect)
		if err != nil {
			return Pair{}, err
		}
	}
	return Pair{Before: before, After: after}, nil
}

// Paths implements Provider.
func (p *FileProvider) Paths() []string {
	return []string{p.BeforePath, p.AfterPath}
}

// EffectProvider loads one file and derives the after image with an Effect.
type EffectProvider struct {
	Path   string
	Effect Effect
	Aspect float64
}

// Load implements Provider.
func (p *EffectProvider) Load(ctx context.Context) (Pair, error) {
	if p.Path == "" {
		return Pair{}, ErrNoImages
	}
	before, err := open(ctx, p.Path)
	if err != nil {
		return Pair{}, err
	}
	after, err := Apply(before, p.Effect)
	if err != nil {
		return Pair{}, err
	}
	if err := checkContext(ctx); err != nil {
		return Pair{}, err
	}

	if p.Aspect > 0 {
		before, after, err = cropPair(ctx, before, after, p.Aspect)
		if err != nil {
			return Pair{}, err
		}
	}
	return Pair{Before: before, After: after, Label: string(p.Effect)}, nil
}

// Paths implements Provider.
func (p *EffectProvider) Paths() []string {
	return []string{p.Path}
}

func open(ctx context.Context, path string) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	log.Debugf("imagesource: loaded %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// cropPair finds the most interesting region of before at the given aspect
// and cuts the same relative region out of after, which may have a different
// resolution.
func cropPair(ctx context.Context, before, after image.Image, aspect float64) (image.Image, image.Image, error) {
	bb := before.Bounds()
	cw, ch := aspectBox(bb.Dx(), bb.Dy(), aspect)
	if cw == bb.Dx() && ch == bb.Dy() {
		return before, after, nil
	}

	analyzer := smartcrop.NewAnalyzer(resizer{})
	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)
	go func() {
		crop, err := analyzer.FindBestCrop(before, cw, ch)
		resultChan <- cropResult{crop: crop, err: err}
	}()

	var crop image.Rectangle
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case res := <-resultChan:
		if res.err != nil {
			return nil, nil, fmt.Errorf("finding best crop: %w", res.err)
		}
		crop = res.crop
	}

	ab := after.Bounds()
	sx := float64(ab.Dx()) / float64(bb.Dx())
	sy := float64(ab.Dy()) / float64(bb.Dy())
	rel := crop.Sub(bb.Min)
	afterCrop := image.Rect(
		int(math.Round(float64(rel.Min.X)*sx)),
		int(math.Round(float64(rel.Min.Y)*sy)),
		int(math.Round(float64(rel.Max.X)*sx)),
		int(math.Round(float64(rel.Max.Y)*sy)),
	).Add(ab.Min)

	return imaging.Crop(before, crop), imaging.Crop(after, afterCrop), nil
}

// aspectBox returns the largest w×h box with the given aspect inside width×height.
func aspectBox(width, height int, aspect float64) (int, int) {
	if width <= 0 || height <= 0 || aspect <= 0 {
		return width, height
	}
	if float64(width)/float64(height) > aspect {
		return int(math.Round(float64(height) * aspect)), height
	}
	return width, int(math.Round(float64(width) / aspect))
}

// resizer implements the smartcrop resizer on top of imaging.
type resizer struct{}

func (resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), imaging.Lanczos)
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
