package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ProgressRing is a circular progress indicator. The ring fills clockwise
// from 12 o'clock as the percent grows; the integer percent is drawn in the
// center. Must only be updated from the UI thread.
type ProgressRing struct {
	widget.BaseWidget

	percent float64
}

// NewProgressRing creates an empty progress ring
func NewProgressRing() *ProgressRing {
	pr := &ProgressRing{}
	pr.ExtendBaseWidget(pr)
	return pr
}

// SetPercent updates the displayed progress, clamped to [0, 100]
func (pr *ProgressRing) SetPercent(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	pr.percent = percent
	pr.Refresh()
}

// Percent returns the currently displayed progress
func (pr *ProgressRing) Percent() float64 {
	return pr.percent
}

// CreateRenderer creates the widget renderer
func (pr *ProgressRing) CreateRenderer() fyne.WidgetRenderer {
	r := &progressRingRenderer{ring: pr}
	r.raster = canvas.NewRasterWithPixels(r.pixelAt)
	r.label = widget.NewLabel("")
	r.label.Alignment = fyne.TextAlignCenter
	return r
}

// progressRingRenderer renders the ring raster with a centered percent label
type progressRingRenderer struct {
	ring   *ProgressRing
	raster *canvas.Raster
	label  *widget.Label
}

// pixelAt decides the color of one raster pixel. The filled arc is measured
// clockwise from 12 o'clock; pixels outside the ring band are transparent.
func (r *progressRingRenderer) pixelAt(x, y, w, h int) color.Color {
	cx := float64(w) / 2
	cy := float64(h) / 2
	outer := math.Min(cx, cy)
	inner := outer * RingInnerRatio

	dx := float64(x) + 0.5 - cx
	dy := float64(y) + 0.5 - cy
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > outer || dist < inner {
		return color.Transparent
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	if angle <= r.ring.percent/100*2*math.Pi {
		return theme.Color(theme.ColorNamePrimary)
	}
	return theme.Color(theme.ColorNameInputBorder)
}

// Layout arranges the raster and the centered label
func (r *progressRingRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)

	labelMin := r.label.MinSize()
	r.label.Resize(labelMin)
	r.label.Move(fyne.NewPos((size.Width-labelMin.Width)/2, (size.Height-labelMin.Height)/2))
}

// MinSize returns the minimum size
func (r *progressRingRenderer) MinSize() fyne.Size {
	return fyne.NewSize(RingDiameter, RingDiameter)
}

// Refresh redraws the ring and updates the percent label
func (r *progressRingRenderer) Refresh() {
	r.label.SetText(fmt.Sprintf(ProgressLabelFormat, int(r.ring.percent)))
	r.raster.Refresh()
}

// Objects returns the canvas objects
func (r *progressRingRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.label}
}

// Destroy cleans up the renderer
func (r *progressRingRenderer) Destroy() {}
