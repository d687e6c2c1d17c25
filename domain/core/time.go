package core

import (
	"strings"
	"time"
)

// StampLayout is the timestamp layout embedded in exported artifact names
const StampLayout = "20060102_150405"

// Stamp renders t as YYYYMMDD_HHMMSS
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ArtifactName builds prefix_YYYYMMDD_HHMMSS.ext
func ArtifactName(prefix, ext string, at time.Time) string {
	ext = strings.TrimPrefix(ext, ".")
	name := Stamp(at)
	if prefix != "" {
		name = prefix + "_" + name
	}
	if ext == "" {
		return name
	}
	return name + "." + ext
}
