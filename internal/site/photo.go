package site

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// loadPhoto reads the image at path and returns it as a data URL. A missing
// file yields an empty URL and no error.
func loadPhoto(path string) (template.URL, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading photo %s: %w", path, err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)), nil
}

// iconURL wraps an emoji (or any short text) in an SVG usable as a favicon.
func iconURL(icon string) template.URL {
	if icon == "" {
		return ""
	}
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">` +
		template.HTMLEscapeString(icon) + `</text></svg>`
	return template.URL("data:image/svg+xml," + url.PathEscape(svg))
}
