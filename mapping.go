package scipic

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/32bitkid/scipic/decompression"
	"github.com/32bitkid/scipic/resource"
)

type diskMapping struct {
	resourceType resource.Type
	number       resource.Number
	file         uint8
	offset       uint32

	rootPath string

	cache         resource.Resource
	decompressors decompression.LUT
}

func (dr *diskMapping) Type() resource.Type     { return dr.resourceType }
func (dr *diskMapping) Number() resource.Number { return dr.number }

func (dr *diskMapping) Resource() (resource.Resource, error) {
	if dr.cache != nil {
		return dr.cache, nil
	}

	file, err := os.Open(path.Join(dr.rootPath, fmt.Sprintf("RESOURCE.%03d", dr.file)))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if _, err = file.Seek(int64(dr.offset), io.SeekStart); err != nil {
		return nil, err
	}

	id, payload, err := resource.ParsePayloadFrom(file, dr.decompressors)
	if err != nil {
		return nil, fmt.Errorf("%v %d: %w", dr.resourceType, dr.number, err)
	}
	if id.Type() != dr.resourceType || id.Number() != dr.number {
		return nil, fmt.Errorf("%v %d: archive holds %v %d at offset %d", dr.resourceType, dr.number, id.Type(), id.Number(), dr.offset)
	}

	dr.cache = &cachedResource{
		id:           id,
		resourceType: dr.resourceType,
		payload:      payload,
	}
	return dr.cache, nil
}

type cachedResource struct {
	id           resource.RID
	resourceType resource.Type
	payload      []uint8
}

func (res cachedResource) ID() resource.RID    { return res.id }
func (res cachedResource) Type() resource.Type { return res.resourceType }
func (res cachedResource) Bytes() []byte       { return res.payload }
