package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/planar/pkg/math3d"
)

// LoadPoints reads every vertex position of a glTF (.gltf) or binary glTF
// (.glb) file.
func LoadPoints(path string) (*PointSet, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return PointsFromDocument(filepath.Base(path), doc)
}

// PointsFromDocument collects the POSITION data of every primitive of every
// mesh in doc. Only embedded buffers are supported.
func PointsFromDocument(name string, doc *gltf.Document) (*PointSet, error) {
	ps := NewPointSet(name)

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}
			ps.Points = append(ps.Points, positions...)
		}
	}

	ps.CalculateBounds()

	return ps, nil
}

// readVec3Accessor reads float Vec3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}

	data, err := accessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	count := accessor.Count
	if count > 0 && start+(count-1)*stride+12 > len(data) {
		return nil, fmt.Errorf("accessor %d overruns its buffer", accessorIdx)
	}

	result := make([]math3d.Vec3, count)
	for i := range count {
		offset := start + i*stride
		result[i] = math3d.V3(
			float64(readFloat32(data[offset:])),
			float64(readFloat32(data[offset+4:])),
			float64(readFloat32(data[offset+8:])),
		)
	}

	return result, nil
}

// accessorBytes returns the embedded buffer an accessor points into.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor) ([]byte, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.Data == nil {
		return nil, fmt.Errorf("buffer has no data")
	}
	return buffer.Data, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
