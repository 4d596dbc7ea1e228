package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-spatialui/spatialui/pkg/errors"
	"github.com/go-spatialui/spatialui/pkg/layout"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

const sheetYAML = `
styles:
  button:
    width: 0.9
    height: 0.2
    align: top
    position: center
    margin: 0.01
  footer:
    height: 0.1
    align: bottom
`

func TestLoadAndApply(t *testing.T) {
	sheet, err := Load([]byte(sheetYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var style layout.Style
	if err := sheet.Apply("button", &style); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if style.Width != 0.9 || style.Height != 0.2 || style.Margin != 0.01 {
		t.Fatalf("style = %+v", style)
	}
	if style.Align != layout.AlignTop || style.Position != layout.PositionCenter {
		t.Fatalf("enums = %s/%s", style.Align, style.Position)
	}

	footer, err := sheet.Style("footer")
	if err != nil {
		t.Fatalf("footer: %v", err)
	}
	if footer.Align != layout.AlignBottom || footer.Position != layout.PositionLeft {
		t.Fatalf("footer enums = %s/%s", footer.Align, footer.Position)
	}
}

func TestUnknownStyleName(t *testing.T) {
	sheet, err := Load([]byte(sheetYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := sheet.Style("missing"); !errors.IsKind(err, errors.KindTargetNotFound) {
		t.Fatalf("expected target not found, got %v", err)
	}
}

func TestBadEnumValues(t *testing.T) {
	spec := StyleSpec{Align: "diagonal"}
	if _, err := spec.Resolve(); !errors.IsKind(err, errors.KindConstruction) {
		t.Fatalf("expected construction error for bad align, got %v", err)
	}

	spec = StyleSpec{Position: "middle-out"}
	if _, err := spec.Resolve(); !errors.IsKind(err, errors.KindConstruction) {
		t.Fatalf("expected construction error for bad position, got %v", err)
	}
}

func TestBadYAML(t *testing.T) {
	if _, err := Load([]byte("styles: [not a map")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadOptional(t *testing.T) {
	sheet, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(sheet.Styles) != 0 {
		t.Fatalf("expected empty sheet, got %d styles", len(sheet.Styles))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := writeFile(path, sheetYAML); err != nil {
		t.Fatalf("write: %v", err)
	}
	sheet, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if _, ok := sheet.Styles["button"]; !ok {
		t.Fatalf("expected button style from file")
	}
}
