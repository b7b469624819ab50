package message

import (
	"fmt"
	"math"

	"github.com/gorustyt/gonavpath/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// Path points are encoded as the protobuf message
//
//	message Path { repeated Point points = 1; }
//	message Point { fixed32 x = 1; fixed32 y = 2; fixed32 z = 3; }
//
// with the float bits stored in the fixed32 fields.
const (
	pathPointsField protowire.Number = 1
	pointXField     protowire.Number = 1
	pointYField     protowire.Number = 2
	pointZField     protowire.Number = 3
)

func EncodePath(points []common.Vec3) (data []byte) {
	for _, p := range points {
		var point []byte
		for i, field := range [...]protowire.Number{pointXField, pointYField, pointZField} {
			point = protowire.AppendTag(point, field, protowire.Fixed32Type)
			point = protowire.AppendFixed32(point, math.Float32bits(p[i]))
		}
		data = protowire.AppendTag(data, pathPointsField, protowire.BytesType)
		data = protowire.AppendBytes(data, point)
	}
	return data
}

// DecodePath reads a path encoded by EncodePath. Unknown fields are skipped.
func DecodePath(data []byte) ([]common.Vec3, error) {
	var points []common.Vec3
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("decode path tag: %w", protowire.ParseError(n))
		}
		data = data[n:]
		if num != pathPointsField || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("decode path field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		pointData, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("decode path point: %w", protowire.ParseError(n))
		}
		data = data[n:]
		point, err := decodePoint(pointData)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func decodePoint(data []byte) (common.Vec3, error) {
	var point common.Vec3
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return point, fmt.Errorf("decode point tag: %w", protowire.ParseError(n))
		}
		data = data[n:]
		if typ == protowire.Fixed32Type && num >= pointXField && num <= pointZField {
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return point, fmt.Errorf("decode point field %d: %w", num, protowire.ParseError(n))
			}
			point[num-pointXField] = math.Float32frombits(v)
			data = data[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return point, fmt.Errorf("decode point field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]
	}
	return point, nil
}
