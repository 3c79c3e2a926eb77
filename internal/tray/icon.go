package tray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
)

const iconSize = 32

// clockIcon returns a 32x32 clock face as an ICO file with a single PNG image
func clockIcon() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))

	rim := color.RGBA{R: 0x8B, G: 0xC3, B: 0x4A, A: 0xFF}
	face := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	hand := color.RGBA{R: 0x2A, G: 0x38, B: 0x50, A: 0xFF}

	c := float64(iconSize-1) / 2
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			r := math.Hypot(float64(x)-c, float64(y)-c)
			switch {
			case r > c:
			case r >= c-2.5:
				img.Set(x, y, rim)
			case (x == 15 || x == 16) && y >= 7 && y <= 16:
				img.Set(x, y, hand)
			case (y == 15 || y == 16) && x >= 15 && x <= 23:
				img.Set(x, y, hand)
			default:
				img.Set(x, y, face)
			}
		}
	}

	var pngData bytes.Buffer
	if err := png.Encode(&pngData, img); err != nil {
		return nil, fmt.Errorf("failed to encode tray icon: %w", err)
	}

	var ico bytes.Buffer
	// ICONDIR: reserved, type (1 = icon), image count
	_ = binary.Write(&ico, binary.LittleEndian, [3]uint16{0, 1, 1})
	// ICONDIRENTRY
	ico.Write([]byte{iconSize, iconSize, 0, 0})
	_ = binary.Write(&ico, binary.LittleEndian, [2]uint16{1, 32})
	_ = binary.Write(&ico, binary.LittleEndian, [2]uint32{uint32(pngData.Len()), 22})
	ico.Write(pngData.Bytes())

	return ico.Bytes(), nil
}
