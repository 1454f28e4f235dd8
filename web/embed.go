// Package web embeds the page templates and static assets of the admin and
// storage display pages.
package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the stylesheet and the display clock script.
func StaticFS() fs.FS {
	return sub("static")
}

// TemplatesFS returns the layout and page templates.
func TemplatesFS() fs.FS {
	return sub("templates")
}

// sub panics if dir is not embedded.
func sub(dir string) fs.FS {
	f, err := fs.Sub(content, dir)
	if err != nil {
		panic(fmt.Sprintf("embedded %s directory: %v", dir, err))
	}
	return f
}
