package marchingsquares

// maskAt returns the 4-bit classification of the 2x2 cell block with
// corners TL=(x-1,y-1), TR=(x,y-1), BL=(x-1,y), BR=(x,y): bit0=TL≠FREE,
// bit1=TR≠FREE, bit2=BL≠FREE, bit3=BR≠FREE.
func maskAt(g *Grid, x, y int) int {
	mask := 0
	if g.At(x-1, y-1) != Free {
		mask |= 0x1
	}
	if g.At(x, y-1) != Free {
		mask |= 0x2
	}
	if g.At(x-1, y) != Free {
		mask |= 0x4
	}
	if g.At(x, y) != Free {
		mask |= 0x8
	}

	return mask
}

func isTop(mask int) bool    { return mask == 0x2 || mask == 0x6 || mask == 0x7 }
func isBottom(mask int) bool { return mask == 0x8 || mask == 0x9 || mask == 0xD }
func isLeft(mask int) bool   { return mask == 0x4 || mask == 0x6 || mask == 0x7 }
func isRight(mask int) bool  { return mask == 0x8 || mask == 0x9 || mask == 0xB }

// ExtractSegments sweeps every lattice point (x, y) with 1 <= x < width
// and 1 <= y < height, emitting horizontal and/or vertical segments per
// the mask at that point, each merged into as long a collinear run as
// possible.
func ExtractSegments(g *Grid) []Segment {
	visited := make([]bool, g.width*g.height)
	idx := func(x, y int) int { return y*g.width + x }

	var segments []Segment

	for y := 1; y < g.height; y++ {
		for x := 1; x < g.width; x++ {
			if visited[idx(x, y)] {
				continue
			}
			mask := maskAt(g, x, y)
			if mask == 0x0 || mask == 0xF {
				continue
			}

			if isTop(mask) || isBottom(mask) {
				continuation := 0x3
				if isBottom(mask) {
					continuation = 0xC
				}
				ex := extendRun(g, visited, x, continuation, func(step int) (int, int) { return x + step, y })
				segments = append(segments, Segment{A: Point{X: x, Y: y}, B: Point{X: ex + 1, Y: y}})
			}

			if isLeft(mask) || isRight(mask) {
				continuation := 0x5
				if isRight(mask) {
					continuation = 0xA
				}
				ey := extendRun(g, visited, y, continuation, func(step int) (int, int) { return x, y + step })
				segments = append(segments, Segment{A: Point{X: x, Y: y}, B: Point{X: x, Y: ey + 1}})
			}

			visited[idx(x, y)] = true
		}
	}

	return segments
}

// extendRun walks the collinear run starting one step past the sweep
// point via next(step) -> (nx, ny), accepting while the candidate stays
// in bounds, carries the expected continuation mask, and is unvisited.
// Every accepted point is marked visited, except the last one accepted
// (the terminal point of the run), which is released so a later sweep
// position may still start a fresh segment there.
//
// It returns the run's extent along the moving axis: base plus the
// number of steps accepted.
func extendRun(g *Grid, visited []bool, base, continuation int, next func(step int) (int, int)) int {
	idx := func(x, y int) int { return y*g.width + x }

	extent := base
	lastAccepted := -1
	for step := 1; ; step++ {
		nx, ny := next(step)
		if nx >= g.width || ny >= g.height {
			break
		}
		if maskAt(g, nx, ny) != continuation || visited[idx(nx, ny)] {
			break
		}
		visited[idx(nx, ny)] = true
		lastAccepted = idx(nx, ny)
		extent = base + step
	}
	if lastAccepted != -1 {
		visited[lastAccepted] = false
	}

	return extent
}
