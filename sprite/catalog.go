package sprite

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// MissingFilesError lists every sheet file that was expected but not found.
type MissingFilesError struct {
	Paths []string
}

func (e *MissingFilesError) Error() string {
	return "missing sprite files:\n\t" + strings.Join(e.Paths, "\n\t")
}

// Catalog holds the metadata of every sprite kind.
// A catalog is always complete: every kind has at least one frame.
type Catalog struct {
	sheets [KindCount]Sheet
}

// NewCatalog builds a catalog from in-memory sheets.
func NewCatalog(sheets map[Kind]Sheet) (*Catalog, error) {
	c := &Catalog{}
	var missing []string
	for _, kind := range Kinds() {
		sheet, ok := sheets[kind]
		if !ok || len(sheet.Frames) == 0 {
			missing = append(missing, kind.Stem())
			continue
		}
		c.sheets[kind] = sheet
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("incomplete sprite catalog: %s", strings.Join(missing, ", "))
	}
	return c, nil
}

// Load reads every sheet from dir. Before parsing anything it checks that
// each kind has both its PNG and JSON file, and reports all missing files at
// once.
func Load(dir string) (*Catalog, error) {
	if err := checkFiles(dir); err != nil {
		return nil, err
	}

	c := &Catalog{}
	for _, kind := range Kinds() {
		path := JSONPath(dir, kind)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		sheet, err := ParseSheet(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c.sheets[kind] = sheet
	}
	return c, nil
}

// Reload replaces the catalog contents with the sheets found in dir.
// On error the catalog is left untouched.
func (c *Catalog) Reload(dir string) error {
	fresh, err := Load(dir)
	if err != nil {
		return err
	}
	c.sheets = fresh.sheets
	return nil
}

// ReloadWith reloads companion assets, such as the sheet images, together
// with the metadata. load runs first; if the metadata then fails to reload,
// the release func it returned is called and the catalog is left untouched.
func (c *Catalog) ReloadWith(dir string, load func() (release func(), err error)) error {
	release, err := load()
	if err != nil {
		return err
	}
	if err := c.Reload(dir); err != nil {
		if release != nil {
			release()
		}
		return err
	}
	return nil
}

// Sheet returns the metadata of a kind.
func (c *Catalog) Sheet(kind Kind) *Sheet {
	return &c.sheets[kind]
}

// Frames returns the ordered frames of a kind.
func (c *Catalog) Frames(kind Kind) []Frame {
	return c.sheets[kind].Frames
}

// Size returns the nominal pixel size of a kind.
func (c *Catalog) Size(kind Kind) image.Point {
	return c.sheets[kind].Size
}

// PNGPath returns the atlas path of a kind inside dir.
func PNGPath(dir string, kind Kind) string {
	return filepath.Join(dir, kind.Stem()+".png")
}

// JSONPath returns the metadata path of a kind inside dir.
func JSONPath(dir string, kind Kind) string {
	return filepath.Join(dir, kind.Stem()+".json")
}

func checkFiles(dir string) error {
	var missing []string
	for _, kind := range Kinds() {
		for _, path := range []string{PNGPath(dir, kind), JSONPath(dir, kind)} {
			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					missing = append(missing, path)
					continue
				}
				return fmt.Errorf("stat %s: %w", path, err)
			}
		}
	}
	if len(missing) > 0 {
		return &MissingFilesError{Paths: missing}
	}
	return nil
}
