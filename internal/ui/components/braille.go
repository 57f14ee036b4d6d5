package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KillianMeersman/telemeter/internal/theme"
)

// brailleDots maps [row][col] to braille dot bit positions.
// Each braille character is a 2-wide by 4-tall pixel grid.
var brailleDots = [4][2]int{
	{0x01, 0x08}, // row 0
	{0x02, 0x10}, // row 1
	{0x04, 0x20}, // row 2
	{0x40, 0x80}, // row 3
}

// BrailleCanvas is a pixel grid that renders to braille characters.
type BrailleCanvas struct {
	Width  int // character width
	Height int // character height
	pixels [][]BraillePixel
}

// BraillePixel holds the state of a single sub-character dot.
type BraillePixel struct {
	On       bool
	ColorIdx int // -1 = dim/unfilled, 0+ = palette index
}

// NewBrailleCanvas creates a canvas of the given character dimensions.
func NewBrailleCanvas(charW, charH int) *BrailleCanvas {
	pxW, pxH := charW*2, charH*4
	pixels := make([][]BraillePixel, pxH)
	for y := range pixels {
		pixels[y] = make([]BraillePixel, pxW)
		for x := range pixels[y] {
			pixels[y][x].ColorIdx = -1
		}
	}
	return &BrailleCanvas{Width: charW, Height: charH, pixels: pixels}
}

// PixelWidth returns the horizontal pixel resolution.
func (c *BrailleCanvas) PixelWidth() int { return c.Width * 2 }

// PixelHeight returns the vertical pixel resolution.
func (c *BrailleCanvas) PixelHeight() int { return c.Height * 4 }

// Set turns on a pixel with the given color index.
func (c *BrailleCanvas) Set(x, y, colorIdx int) {
	if x >= 0 && x < c.PixelWidth() && y >= 0 && y < c.PixelHeight() {
		c.pixels[y][x] = BraillePixel{On: true, ColorIdx: colorIdx}
	}
}

// Render converts the pixel grid to styled braille strings.
// palette maps color index to hex color; dimColor is used for
// unfilled (colorIdx == -1) pixels. Each character cell takes the
// color most of its lit pixels carry.
func (c *BrailleCanvas) Render(palette []string, dimColor string) []string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))
	styles := make([]lipgloss.Style, len(palette))
	for i, hex := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	var lines []string
	for cr := 0; cr < c.Height; cr++ {
		var sb strings.Builder
		for cc := 0; cc < c.Width; cc++ {
			code := 0x2800
			// counts[0] is the dim bucket, counts[i+1] is palette index i.
			counts := make([]int, len(palette)+1)
			for dr := 0; dr < 4; dr++ {
				for dc := 0; dc < 2; dc++ {
					px, py := cc*2+dc, cr*4+dr
					if px >= c.PixelWidth() || py >= c.PixelHeight() {
						continue
					}
					p := c.pixels[py][px]
					if !p.On {
						continue
					}
					code |= brailleDots[dr][dc]
					if p.ColorIdx >= 0 && p.ColorIdx < len(palette) {
						counts[p.ColorIdx+1]++
					} else {
						counts[0]++
					}
				}
			}
			if code == 0x2800 {
				sb.WriteString(" ")
				continue
			}
			ch := string(rune(code))
			best := 0
			for i := 1; i < len(counts); i++ {
				if counts[i] > counts[best] {
					best = i
				}
			}
			if best == 0 {
				sb.WriteString(dimStyle.Render(ch))
			} else {
				sb.WriteString(styles[best-1].Render(ch))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// RenderGradient converts the pixel grid to styled braille strings,
// coloring filled pixels along the given gradient stops. Filled pixels
// encode their normalized gradient position in ColorIdx (position*1000);
// ColorIdx == -1 pixels render in dimColor.
func (c *BrailleCanvas) RenderGradient(dimColor string, stops []string) []string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))
	style := lipgloss.NewStyle()

	var lines []string
	for cr := 0; cr < c.Height; cr++ {
		var sb strings.Builder
		for cc := 0; cc < c.Width; cc++ {
			code := 0x2800
			filled := 0
			dim := 0
			var sumPos float64

			for dr := 0; dr < 4; dr++ {
				for dc := 0; dc < 2; dc++ {
					px, py := cc*2+dc, cr*4+dr
					if px >= c.PixelWidth() || py >= c.PixelHeight() {
						continue
					}
					p := c.pixels[py][px]
					if !p.On {
						continue
					}
					code |= brailleDots[dr][dc]
					if p.ColorIdx >= 0 {
						filled++
						sumPos += float64(p.ColorIdx) / 1000.0
					} else {
						dim++
					}
				}
			}

			if code == 0x2800 {
				sb.WriteString(" ")
				continue
			}

			ch := string(rune(code))
			if filled > dim && filled > 0 {
				t := sumPos / float64(filled)
				if t > 1 {
					t = 1
				}
				hex := theme.MultiStopGradient(t, stops)
				sb.WriteString(style.Foreground(lipgloss.Color(hex)).Render(ch))
			} else {
				sb.WriteString(dimStyle.Render(ch))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// DrawRing sets pixels on a ring (donut) slice.
// cx, cy: center in pixel coords. outerR, innerR: radii.
// startAngle, endAngle: in radians (0 = top, clockwise).
func (c *BrailleCanvas) DrawRing(cx, cy, outerR, innerR, startAngle, endAngle float64, colorIdx int) {
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			dx := float64(x) - cx + 0.5
			dy := float64(y) - cy + 0.5
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < innerR || dist > outerR {
				continue
			}
			// Angle from top, clockwise
			angle := math.Atan2(-dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle >= startAngle && angle <= endAngle {
				c.Set(x, y, colorIdx)
			}
		}
	}
}

// DrawSemicircle sets pixels on a semicircle arc (top half).
// cx, cy: center (bottom-center of the semicircle).
// fillFraction: 0..1, filled left to right.
// Filled pixels encode their arc position for RenderGradient.
func (c *BrailleCanvas) DrawSemicircle(cx, cy, outerR, innerR, fillFraction float64) {
	fillAngle := -math.Pi + fillFraction*math.Pi
	if fillAngle > 0 {
		fillAngle = 0
	}

	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			dx := float64(x) - cx + 0.5
			dy := float64(y) - cy + 0.5
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < innerR || dist > outerR || dy > 1 {
				continue
			}
			angle := math.Atan2(dy, dx) // -π (left) → 0 (right)
			if angle <= fillAngle {
				t := (angle + math.Pi) / math.Pi // 0..1
				c.Set(x, y, int(t*1000))
			} else {
				c.Set(x, y, -1)
			}
		}
	}
}
