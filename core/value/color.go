package value

import (
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

var (
	colorString  = color.New(color.FgGreen)
	colorNumber  = color.New(color.FgWhite)
	colorBoolean = color.New(color.FgHiMagenta)
	colorNull    = color.New(color.FgYellow)
	colorError   = color.New(color.FgRed)

	colorDir        = color.New(color.FgBlue)
	colorHiddenDir  = color.New(color.FgHiBlue)
	colorFile       = color.New(color.FgGreen)
	colorHiddenFile = color.New(color.FgHiGreen)
	colorExecutable = color.New(color.FgYellow)
	colorOther      = color.New(color.FgCyan)
)

// SetColor turns color output on or off for every decorated rendering.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// ColorEnabled reports whether decorated renderings include color codes.
func ColorEnabled() bool {
	return !color.NoColor
}

func fileColor(f FileRef) *color.Color {
	hidden := strings.HasPrefix(filepath.Base(f.Path), ".")

	switch {
	case f.Mode.IsDir() && hidden:
		return colorHiddenDir
	case f.Mode.IsDir():
		return colorDir
	case !f.Mode.IsRegular():
		return colorOther
	case hidden:
		return colorHiddenFile
	case f.Mode.Perm()&0111 != 0:
		return colorExecutable
	default:
		return colorFile
	}
}
