// Package web embeds the HTML templates for the CryptoBank views.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
