package place

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// Entity is one generated place record. Coordinates stay preformatted
// strings since their precision is part of the output contract.
type Entity struct {
	DisplayName string
	Latitude    string
	Longitude   string
	TypeLabel   string
}

// Filename is the output file name for the entity.
func (e Entity) Filename() string {
	return e.DisplayName + ".md"
}

// Markdown renders the fixture document. The type field quotes the
// already-bracketed label, so it comes out double-bracketed; the consuming
// fixtures expect exactly that.
func (e Entity) Markdown() string {
	return fmt.Sprintf(`---
category: "[[Places]]"
type: "%s"
coordinates:
  - "%s"
  - "%s"
---
`, e.TypeLabel, e.Latitude, e.Longitude)
}

// WriteFile writes the entity document into dir, overwriting any existing
// file of the same name.
func WriteFile(dir string, e Entity) error {
	path := filepath.Join(dir, e.Filename())
	if err := os.WriteFile(path, []byte(e.Markdown()), 0o644); err != nil {
		return eris.Wrapf(err, "place: write %s", path)
	}
	return nil
}
