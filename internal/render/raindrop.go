package render

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/Jheathc1/jhWebsite/internal/raindrop"
)

// WriteRaindropSVG renders one sample of the skills intro sequence.
func WriteRaindropSVG(w io.Writer, f raindrop.Frame) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="%s" viewBox="0 0 %s %s" class="raindrop">`, svgNS, fmtNum(f.Width), fmtNum(f.Height))
	b.WriteString(`<defs><linearGradient id="drop-fill" x1="0" y1="0" x2="0" y2="1">` +
		`<stop offset="0%" stop-color="#93C5FD"/><stop offset="100%" stop-color="#6D28D9"/>` +
		`</linearGradient></defs>`)

	for _, d := range f.Drops {
		if d.Opacity <= 0 {
			continue
		}
		x := d.X - raindrop.DropWidth/2
		fmt.Fprintf(&b, `<g transform="translate(%s %s) scale(%s)" opacity="%s"><path d="%s" fill="url(#drop-fill)"/></g>`,
			fmtNum(x), fmtNum(d.Y), fmtNum(d.Scale), fmtNum(d.Opacity), raindrop.DropPath)
	}

	for _, s := range f.Splats {
		if s.Opacity <= 0 {
			continue
		}
		// Scale about the splat center.
		cy := s.Y + s.Height/2
		fmt.Fprintf(&b, `<g transform="translate(%s %s) scale(%s)" opacity="%s">`,
			fmtNum(s.X), fmtNum(cy), fmtNum(s.Scale), fmtNum(s.Opacity))
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="url(#drop-fill)"/>`,
			fmtNum(-s.Width/2), fmtNum(-s.Height/2), fmtNum(s.Width), fmtNum(s.Height), fmtNum(s.Radius))
		if s.TitleOpacity > 0 {
			fmt.Fprintf(&b, `<text x="0" y="0" text-anchor="middle" dominant-baseline="middle" fill="#FFFFFF" opacity="%s">%s</text>`,
				fmtNum(s.TitleOpacity), html.EscapeString(s.Title))
		}
		b.WriteString(`</g>`)
	}
	b.WriteString(`</svg>`)

	_, err := w.Write(b.Bytes())
	return err
}
