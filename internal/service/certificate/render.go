package certificate

import (
	"PathForge/internal/models"
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	certWidth  = 1200
	certHeight = 850
)

// Renderer draws a certificate record into a shareable PNG. It is a
// pure function of the record and the owner's display name.
type Renderer struct {
	titleFace font.Face
	nameFace  font.Face
	bodyFace  font.Face
}

// NewRenderer loads the typeface. An empty fontPath falls back to the
// bundled Go fonts, so the binary works without any asset files.
func NewRenderer(fontPath string) (*Renderer, error) {
	regular := goregular.TTF
	bold := gobold.TTF
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read certificate font: %w", err)
		}
		regular = data
		bold = data
	}

	titleFace, err := newFace(bold, 64)
	if err != nil {
		return nil, err
	}
	nameFace, err := newFace(bold, 48)
	if err != nil {
		return nil, err
	}
	bodyFace, err := newFace(regular, 28)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		titleFace: titleFace,
		nameFace:  nameFace,
		bodyFace:  bodyFace,
	}, nil
}

func (r *Renderer) Render(cert models.Certificate, ownerName string) ([]byte, error) {
	dc := gg.NewContext(certWidth, certHeight)

	dc.SetColor(color.NRGBA{R: 17, G: 24, B: 39, A: 255})
	dc.Clear()

	// Double border
	dc.SetColor(color.NRGBA{R: 139, G: 92, B: 246, A: 255})
	dc.SetLineWidth(6)
	dc.DrawRectangle(40, 40, certWidth-80, certHeight-80)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(56, 56, certWidth-112, certHeight-112)
	dc.Stroke()

	cx := float64(certWidth) / 2

	dc.SetColor(color.White)
	dc.SetFontFace(r.titleFace)
	dc.DrawStringAnchored("Certificate of Completion", cx, 180, 0.5, 0.5)

	dc.SetFontFace(r.bodyFace)
	dc.SetColor(color.NRGBA{R: 156, G: 163, B: 175, A: 255})
	dc.DrawStringAnchored("This certifies that", cx, 290, 0.5, 0.5)

	dc.SetFontFace(r.nameFace)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(ownerName, cx, 370, 0.5, 0.5)

	dc.SetFontFace(r.bodyFace)
	dc.SetColor(color.NRGBA{R: 156, G: 163, B: 175, A: 255})
	dc.DrawStringAnchored("has successfully completed", cx, 450, 0.5, 0.5)

	dc.SetFontFace(r.nameFace)
	dc.SetColor(color.NRGBA{R: 167, G: 139, B: 250, A: 255})
	dc.DrawStringAnchored(cert.PathTitle, cx, 530, 0.5, 0.5)

	dc.SetFontFace(r.bodyFace)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(fmt.Sprintf("Grade: %d%%", cert.Grade), cx, 630, 0.5, 0.5)
	dc.SetColor(color.NRGBA{R: 156, G: 163, B: 175, A: 255})
	dc.DrawStringAnchored(cert.CompletionDate.Format("January 2, 2006"), cx, 690, 0.5, 0.5)
	dc.DrawStringAnchored("Certificate ID: "+cert.ID.String(), cx, 760, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode certificate png: %w", err)
	}
	return buf.Bytes(), nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse certificate font: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
