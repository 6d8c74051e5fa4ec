package utils

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

// SlugifyFilename chuyển tên file gốc thành slug an toàn cho object path
// trên storage ("Bánh Mì đặc biệt.jpg" -> "banh-mi-dac-biet").
func SlugifyFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	s := slug.Make(base)
	if s == "" {
		s = "image"
	}
	return s
}
