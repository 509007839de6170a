package resource

import (
	"github.com/32bitkid/scipic/decompression"
	"github.com/32bitkid/scipic/pic"
)

type Mapping interface {
	Type() Type
	Number() Number

	Resource() (Resource, error)
}

type PictureMapping struct{ Mapping }

// Render interprets the picture program. Embedded cels are decoded with
// the SCI0 run-length decoder unless options name another one.
func (p PictureMapping) Render(options ...pic.Options) (*pic.Pic, error) {
	res, err := p.Resource()
	if err != nil {
		return nil, err
	}
	opts := append([]pic.Options{{CelDecoder: decompression.RLECel{}}}, options...)
	return pic.New(res.Bytes(), opts...)
}
