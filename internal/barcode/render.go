package barcode

import (
	"fmt"
	"strings"
)

// Bar is one rectangle of a rendered barcode. X and Width are in the same
// units as the requested total width; Dark bars are filled black, light bars
// are background.
type Bar struct {
	X      float64
	Width  float64
	Height float64
	Dark   bool
}

// RenderOptions controls barcode geometry. MinBarWidth guards against bars
// thinner than a printer can reproduce; call sites use 0.8 (invoice) or
// 1.0 (sticker).
type RenderOptions struct {
	Width       float64
	Height      float64
	MinBarWidth float64
	// Label, when set, is drawn beneath the bars and LabelHeight is
	// subtracted from the bar height.
	Label       string
	LabelHeight float64
}

// Bars lays out one rectangle per bit of the bitstring.
func Bars(bits string, opts RenderOptions) []Bar {
	if bits == "" {
		return nil
	}

	barWidth := opts.Width / float64(len(bits))
	if barWidth < opts.MinBarWidth {
		barWidth = opts.MinBarWidth
	}

	height := opts.Height
	if opts.Label != "" {
		height -= opts.LabelHeight
	}

	bars := make([]Bar, 0, len(bits))
	x := 0.0
	for _, bit := range bits {
		bars = append(bars, Bar{
			X:      x,
			Width:  barWidth,
			Height: height,
			Dark:   bit == '1',
		})
		x += barWidth
	}
	return bars
}

// SVG renders the bitstring as an inline SVG fragment, one <rect> per bit,
// with an optional human-readable label centred beneath the bars.
func SVG(bits string, opts RenderOptions) string {
	bars := Bars(bits, opts)

	var b strings.Builder
	totalWidth := 0.0
	if len(bars) > 0 {
		totalWidth = bars[len(bars)-1].X + bars[len(bars)-1].Width
	}

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.1f" height="%.1f">`, totalWidth, opts.Height)
	for _, bar := range bars {
		fill := "#ffffff"
		if bar.Dark {
			fill = "#000000"
		}
		fmt.Fprintf(&b, `<rect x="%.2f" y="0" width="%.2f" height="%.1f" fill="%s"/>`, bar.X, bar.Width, bar.Height, fill)
	}
	if opts.Label != "" {
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%.1f" font-family="monospace">%s</text>`,
			totalWidth/2, opts.Height-1, opts.LabelHeight-2, escapeText(opts.Label))
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
