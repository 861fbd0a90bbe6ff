package paint

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfMargin is the page margin around the drawing, in millimeters.
const pdfMargin = 10.0

// encodePDF places the image, centered and aspect-preserving, on a single
// A4 page. Landscape drawings get a landscape page.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: empty image", ErrInvalidDimensions)
	}

	orientation := "P"
	if b.Dx() > b.Dy() {
		orientation = "L"
	}

	var raw bytes.Buffer
	if err := png.Encode(&raw, img); err != nil {
		return err
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("kidsart paint", true)
	pdf.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("drawing", opt, &raw)

	pageW, pageH := pdf.GetPageSize()
	availW, availH := pageW-2*pdfMargin, pageH-2*pdfMargin
	scale := min(availW/float64(b.Dx()), availH/float64(b.Dy()))
	iw, ih := float64(b.Dx())*scale, float64(b.Dy())*scale

	pdf.ImageOptions("drawing", (pageW-iw)/2, (pageH-ih)/2, iw, ih, false, opt, 0, "")

	return pdf.Output(w)
}
