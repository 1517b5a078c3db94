package marchingsquares

import "image"

// GridFromImage classifies an image's luminance into a Grid suitable for
// ExtractSegments: luminance < 16 -> Solid, >= 240 -> Free, else
// Destroyable. The outer one-pixel frame is forced Solid regardless of
// luminance, and an isolated Free cell whose four 4-neighbours are all
// non-Free is coerced to Solid (hole filling).
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	cells := make([]CellType, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			luminance := grayLuminance(img, bounds.Min.X+x, bounds.Min.Y+y)

			var c CellType
			switch {
			case luminance < 16:
				c = Solid
			case luminance >= 240:
				c = Free
			default:
				c = Destroyable
			}

			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				c = Solid
			}

			cells[y*width+x] = c
		}
	}

	grid := &Grid{width: width, height: height, cells: cells}
	fillIsolatedHoles(grid)

	return grid
}

func grayLuminance(img image.Image, x, y int) uint8 {
	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Set(0, 0, img.At(x, y))

	return gray.GrayAt(0, 0).Y
}

// fillIsolatedHoles coerces every Free cell whose four orthogonal
// neighbours are all non-Free to Solid.
func fillIsolatedHoles(g *Grid) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) != Free {
				continue
			}
			if isIsolated(g, x, y) {
				g.cells[y*g.width+x] = Solid
			}
		}
	}
}

func isIsolated(g *Grid, x, y int) bool {
	type delta struct{ dx, dy int }
	for _, d := range []delta{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d.dx, y+d.dy
		if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
			continue
		}
		if g.At(nx, ny) == Free {
			return false
		}
	}

	return true
}
