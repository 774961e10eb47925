// Package icons renders the tray and notification icons at runtime so the
// binary needs no embedded image files.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphSize = 16
	iconSize  = 64
)

var (
	appColor          = color.RGBA{R: 0xB2, G: 0x22, B: 0x22, A: 0xFF}
	notificationColor = color.RGBA{R: 0xD2, G: 0x69, B: 0x1E, A: 0xFF}
)

// App returns the tray icon
func App() fyne.Resource {
	return mustResource("chucktray.png", render(appColor, "C"))
}

// Notification returns the icon shown next to each joke
func Notification() fyne.Resource {
	return mustResource("chucktray-notification.png", render(notificationColor, "!"))
}

// WriteFile stores res in dir and returns the file path. Native notifiers
// need icons on disk.
func WriteFile(res fyne.Resource, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create icon dir: %w", err)
	}
	path := filepath.Join(dir, res.Name())
	if err := os.WriteFile(path, res.Content(), 0644); err != nil {
		return "", fmt.Errorf("failed to write icon: %w", err)
	}
	return path, nil
}

// render draws glyph centred on a rounded square and scales it up
func render(bg color.RGBA, glyph string) image.Image {
	small := image.NewRGBA(image.Rect(0, 0, glyphSize, glyphSize))

	for y := 0; y < glyphSize; y++ {
		for x := 0; x < glyphSize; x++ {
			if isCorner(x, y) {
				continue
			}
			small.Set(x, y, bg)
		}
	}

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	width := d.MeasureString(glyph).Ceil()
	d.Dot = fixed.P((glyphSize-width)/2, (glyphSize+face.Ascent-face.Descent)/2)
	d.DrawString(glyph)

	scaled := resize.Resize(iconSize, iconSize, small, resize.NearestNeighbor)

	out := image.NewRGBA(scaled.Bounds())
	draw.Draw(out, out.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	return out
}

func isCorner(x, y int) bool {
	last := glyphSize - 1
	return (x == 0 || x == last) && (y == 0 || y == last)
}

func mustResource(name string, img image.Image) fyne.Resource {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// encoding an in-memory RGBA image cannot fail
		panic(err)
	}
	return fyne.NewStaticResource(name, buf.Bytes())
}
