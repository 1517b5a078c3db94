package marchingsquares_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cs0rbagomba/graph/marchingsquares"
)

func grayImage(width, height int, luminance func(x, y int) uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: luminance(x, y)})
		}
	}

	return img
}

func TestGridFromImageClassifiesByLuminance(t *testing.T) {
	require := require.New(t)
	// interior pixel only; border forced Solid separately below.
	img := grayImage(5, 5, func(x, y int) uint8 {
		if x == 2 && y == 2 {
			return 128 // mid-grey -> Destroyable
		}
		if x == 1 && y == 1 {
			return 0 // black -> Solid
		}

		return 255 // white -> Free
	})

	g := marchingsquares.GridFromImage(img)
	require.Equal(marchingsquares.Destroyable, g.At(2, 2))
	require.Equal(marchingsquares.Solid, g.At(1, 1))
}

func TestGridFromImageForcesBorderSolid(t *testing.T) {
	img := grayImage(5, 5, func(x, y int) uint8 { return 255 })
	g := marchingsquares.GridFromImage(img)

	for x := 0; x < 5; x++ {
		assert.Equal(t, marchingsquares.Solid, g.At(x, 0))
		assert.Equal(t, marchingsquares.Solid, g.At(x, 4))
	}
	for y := 0; y < 5; y++ {
		assert.Equal(t, marchingsquares.Solid, g.At(0, y))
		assert.Equal(t, marchingsquares.Solid, g.At(4, y))
	}
}

func TestGridFromImageFillsIsolatedHole(t *testing.T) {
	// a single Free pixel deep inside an otherwise all-black interior,
	// surrounded on all four sides by Solid, must be coerced to Solid.
	img := grayImage(5, 5, func(x, y int) uint8 {
		if x == 2 && y == 2 {
			return 255
		}

		return 0
	})

	g := marchingsquares.GridFromImage(img)
	assert.Equal(t, marchingsquares.Solid, g.At(2, 2))
}

func TestGridFromImageKeepsConnectedFreeSpace(t *testing.T) {
	img := grayImage(6, 6, func(x, y int) uint8 {
		if x >= 2 && x <= 3 && y >= 2 && y <= 3 {
			return 255
		}

		return 0
	})

	g := marchingsquares.GridFromImage(img)
	assert.Equal(t, marchingsquares.Free, g.At(2, 2), "a 2x2 free patch is not isolated and must survive hole filling")
}
