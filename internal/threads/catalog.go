package threads

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/stitch-pattern-mcp/internal/imaging"
)

//go:embed dmc.csv
var embeddedDMC string

// ThreadColor is a named reference color from the catalog.
type ThreadColor struct {
	Code string           `json:"code"` // Manufacturer code, unique within a catalog (e.g. "310")
	RGB  imaging.RGBColor `json:"rgb"`  // Reference color
	Name string           `json:"name"` // Human readable shade name
}

// Catalog is an immutable, ordered set of thread colors unique by code.
type Catalog struct {
	entries []ThreadColor
	byCode  map[string]int
}

// New builds a catalog from entries, keeping their order as the lookup
// order. It fails on an empty list, a blank code or a duplicate code.
func New(entries []ThreadColor) (*Catalog, error) {
	c, err := newCatalog(entries)
	if err != nil {
		return nil, &CatalogLoadError{Source: "entries", Err: err}
	}
	return c, nil
}

func newCatalog(entries []ThreadColor) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New("catalog contains no thread colors")
	}
	c := &Catalog{
		entries: make([]ThreadColor, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		if e.Code == "" {
			return nil, fmt.Errorf("entry %d has an empty code", i)
		}
		if _, dup := c.byCode[e.Code]; dup {
			return nil, fmt.Errorf("duplicate code %q", e.Code)
		}
		c.byCode[e.Code] = i
	}
	return c, nil
}

// Load reads a catalog from CSV records of the form
//
//	code,R,G,B,name
//
// Lines starting with '#' are comments. source names the input in errors.
//
// # Errors
//
// Any record with the wrong number of fields, a component outside 0-255, a
// blank or duplicate code, or an input with no records fails the whole load
// with a *CatalogLoadError.
func Load(r io.Reader, source string) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	var entries []ThreadColor
	seen := make(map[string]int)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &CatalogLoadError{Source: source, Line: perr.Line, Err: perr.Err}
			}
			return nil, &CatalogLoadError{Source: source, Err: err}
		}
		line, _ := cr.FieldPos(0)

		tc, err := parseRecord(rec)
		if err != nil {
			return nil, &CatalogLoadError{Source: source, Line: line, Err: err}
		}
		if first, dup := seen[tc.Code]; dup {
			return nil, &CatalogLoadError{Source: source, Line: line,
				Err: fmt.Errorf("duplicate code %q (first seen on line %d)", tc.Code, first)}
		}
		seen[tc.Code] = line
		entries = append(entries, tc)
	}

	c, err := newCatalog(entries)
	if err != nil {
		return nil, &CatalogLoadError{Source: source, Err: err}
	}
	return c, nil
}

func parseRecord(rec []string) (ThreadColor, error) {
	code := strings.TrimSpace(rec[0])
	if code == "" {
		return ThreadColor{}, errors.New("empty code")
	}
	var rgb [3]uint8
	for i, name := range []string{"R", "G", "B"} {
		v, err := strconv.ParseUint(strings.TrimSpace(rec[i+1]), 10, 8)
		if err != nil {
			return ThreadColor{}, fmt.Errorf("code %q: invalid %s component %q", code, name, rec[i+1])
		}
		rgb[i] = uint8(v)
	}
	return ThreadColor{
		Code: code,
		RGB:  imaging.RGBColor{R: rgb[0], G: rgb[1], B: rgb[2]},
		Name: strings.TrimSpace(rec[4]),
	}, nil
}

// LoadFile reads a catalog CSV from disk. A missing file is a *CatalogLoadError.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CatalogLoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Load(f, path)
}

// Default returns the embedded DMC catalog.
func Default() (*Catalog, error) {
	return Load(strings.NewReader(embeddedDMC), "embedded")
}

// Len returns the number of threads in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog in load order.
func (c *Catalog) Entries() []ThreadColor {
	out := make([]ThreadColor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the thread with the given code.
func (c *Catalog) Lookup(code string) (ThreadColor, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return ThreadColor{}, false
	}
	return c.entries[i], true
}

// Nearest returns the thread closest to rgb under the weighted distance.
// Ties go to the entry loaded first.
func (c *Catalog) Nearest(rgb imaging.RGBColor) ThreadColor {
	tc, _ := c.NearestWithDistance(rgb)
	return tc
}

// NearestWithDistance is Nearest that also reports the distance to the match.
func (c *Catalog) NearestWithDistance(rgb imaging.RGBColor) (ThreadColor, float64) {
	best := -1
	bestSq := math.MaxInt
	for i, e := range c.entries {
		// strict < keeps the earliest entry on ties
		if d := weightedSq(e.RGB, rgb); d < bestSq {
			best, bestSq = i, d
			if d == 0 {
				break
			}
		}
	}
	if best < 0 {
		return ThreadColor{}, math.Inf(1)
	}
	return c.entries[best], math.Sqrt(float64(bestSq))
}

// Distance returns the weighted distance between two colors:
// sqrt(2*dr^2 + 4*dg^2 + 3*db^2).
func Distance(a, b imaging.RGBColor) float64 {
	return math.Sqrt(float64(weightedSq(a, b)))
}

func weightedSq(a, b imaging.RGBColor) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return 2*dr*dr + 4*dg*dg + 3*db*db
}
