// Package fontchain resolves a font face by trying system fonts in a fixed
// order. The chain always ends in a usable face: the embedded Go Bold font,
// and below that the 7x13 bitmap face.
package fontchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Sources reported for the built-in fallbacks.
const (
	SourceEmbedded = "embedded:gobold"
	SourceBitmap   = "embedded:basicfont7x13"
)

// DefaultNames lists bold sans faces commonly shipped with macOS, Windows
// and Linux, most preferred first.
var DefaultNames = []string{
	"Arial Bold.ttf",
	"arialbd.ttf",
	"DejaVuSans-Bold.ttf",
	"LiberationSans-Bold.ttf",
	"Helvetica.ttc",
	"arial.ttf",
}

// Finder maps a font name to a file path.
type Finder func(name string) (string, error)

// Attempt records one failed lookup.
type Attempt struct {
	Name string
	Err  error
}

// Resolved is the outcome of walking the chain. The caller owns Face and
// must Close it.
type Resolved struct {
	Face     font.Face
	Source   string
	Attempts []Attempt
}

// Chain tries Names in order. A nil Find uses the system font directories.
type Chain struct {
	Names []string
	Find  Finder
}

// Default returns a chain over DefaultNames.
func Default() *Chain {
	return &Chain{Names: DefaultNames}
}

// Face returns a face at size points (72 DPI) from the first name that can
// be found, parsed and instantiated, or from the embedded fallbacks.
func (c *Chain) Face(size float64) Resolved {
	find := c.Find
	if find == nil {
		find = systemFind
	}

	var res Resolved
	for _, name := range c.Names {
		path, err := find(name)
		if err != nil {
			res.Attempts = append(res.Attempts, Attempt{Name: name, Err: err})
			continue
		}
		f, err := Load(path)
		if err != nil {
			res.Attempts = append(res.Attempts, Attempt{Name: name, Err: err})
			continue
		}
		face, err := newFace(f, size)
		if err != nil {
			res.Attempts = append(res.Attempts, Attempt{Name: name, Err: err})
			continue
		}
		res.Face = face
		res.Source = path
		return res
	}

	f, err := Embedded()
	if err == nil {
		var face font.Face
		if face, err = newFace(f, size); err == nil {
			res.Face = face
			res.Source = SourceEmbedded
			return res
		}
	}
	res.Attempts = append(res.Attempts, Attempt{Name: SourceEmbedded, Err: err})
	res.Face = basicfont.Face7x13
	res.Source = SourceBitmap
	return res
}

// Embedded parses the Go Bold font compiled into the binary.
func Embedded() (*opentype.Font, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gobold: %w", err)
	}
	return f, nil
}

// Load parses a TTF/OTF file, or the first face of a TTC/OTC collection.
func Load(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse collection %s: %w", path, err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", path, err)
		}
		return f, nil
	default:
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return f, nil
	}
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// systemFind searches the user and system font directories, then the
// platform font registry where one exists.
func systemFind(name string) (string, error) {
	path, err := findfont.Find(name)
	if err == nil {
		return path, nil
	}
	if p, rerr := registryFind(name); rerr == nil {
		return p, nil
	}
	return "", err
}
