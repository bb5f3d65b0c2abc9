// SPDX-License-Identifier: EPL-2.0

package soundgrid

import (
	"os"
	"path/filepath"
	"strings"
)

// TextGridExt is the extension of annotation files looked up next to a
// recording.
const TextGridExt = ".TextGrid"

// LocateTextGrid finds the annotation file for wavPath.
//
// dir defaults to the directory of wavPath. When file is set, only
// dir/file (or file itself when absolute) is considered. Otherwise
// dir/<stem>.TextGrid is tried, where stem is the recording's base name
// without extension. Directories never match.
func LocateTextGrid(wavPath, dir, file string) (string, bool) {
	if dir == "" {
		dir = filepath.Dir(wavPath)
	}

	var candidate string
	switch {
	case file != "" && filepath.IsAbs(file):
		candidate = file
	case file != "":
		candidate = filepath.Join(dir, file)
	default:
		candidate = filepath.Join(dir, stem(wavPath)+TextGridExt)
	}

	info, err := os.Stat(candidate)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	return candidate, true
}

func stem(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
