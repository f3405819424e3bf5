package render

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

const defaultJPEGQuality = 75

func encodeFile(path string, img image.Image, format Format, opts EncodeOptions, logger Logger) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return encodeImage(f, img, format, opts, logger)
}

func encodeImage(w io.Writer, img image.Image, format Format, opts EncodeOptions, logger Logger) error {
	switch format {
	case PNG:
		if opts.Filters != 0 {
			logger.Infof("canvas", "png filter flags %#x ignored by encoder", int(opts.Filters))
		}
		enc := png.Encoder{CompressionLevel: pngCompression(opts.Quality)}
		return enc.Encode(w, img)
	case JPEG:
		quality := opts.Quality
		if quality < 0 {
			quality = defaultJPEGQuality
		}
		if quality > 100 {
			return fmt.Errorf("jpeg quality %d out of range", quality)
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case GIF:
		return gif.Encode(w, toPaletted(img), nil)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// pngCompression maps a 0..9 compression level onto the encoder levels.
func pngCompression(level int) png.CompressionLevel {
	switch {
	case level < 0:
		return png.DefaultCompression
	case level == 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// gifPalette is the web-safe palette with a leading transparent entry.
var gifPalette = append(color.Palette{color.Transparent}, palette.WebSafe...)

func toPaletted(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	out := image.NewPaletted(bounds, gifPalette)
	xdraw.Draw(out, bounds, img, bounds.Min, xdraw.Src)
	return out
}

