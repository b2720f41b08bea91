// Package templates holds the pages of the calculator as templ components.
// Run `templ generate` after editing a .templ file.
package templates

import "html/template"

// ChartView is a rendered chart: its element, its init script and the
// scripts it depends on.
type ChartView struct {
	Element template.HTML
	Script  template.HTML
	Assets  []string
}
