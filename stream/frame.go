package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animator/entity"
)

// FrameSize is the length of a marshalled Frame.
const FrameSize = 11

// Frame is a snapshot of an entity's position and colour.
type Frame struct {
	X      float64
	Y      float64
	Colour colorful.Color
}

// NewFrame captures the current state of e. A missing or non colour
// "colour" attribute is sent as black.
func NewFrame(e *entity.Animated) *Frame {
	f := new(Frame)
	f.X, f.Y = e.Position()
	if c, ok := e.Get("colour").(colorful.Color); ok {
		f.Colour = c
	}
	return f
}

// MarshalBinary encodes x and y as little endian float32 followed by RGB.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 8, FrameSize)
	binary.LittleEndian.PutUint32(data[0:], math.Float32bits(float32(f.X)))
	binary.LittleEndian.PutUint32(data[4:], math.Float32bits(float32(f.Y)))
	r, g, b := f.Colour.Clamped().RGB255()
	data = append(data, r, g, b)

	return data, nil
}
