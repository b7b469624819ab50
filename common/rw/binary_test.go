package rw

import (
	"testing"

	"github.com/gorustyt/gonavpath/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	w := NewBinWriter()
	w.WriteString("box[1]")
	w.WriteBool(true)
	w.WriteUInt32(42)
	w.WriteVec3(common.Vec3{1.5, -2, 0.25})
	w.WriteFloat32s([]float32{3, 4})
	assert.Len(t, w.GetWriteBytes(), 4+6+1+4+12+8)

	r := NewBinReader(w.GetWriteBytes())
	assert.Equal(t, "box[1]", r.ReadString())
	assert.True(t, r.ReadBool())
	assert.Equal(t, uint32(42), r.ReadUInt32())
	assert.Equal(t, common.Vec3{1.5, -2, 0.25}, r.ReadVec3())
	values := make([]float32, 2)
	r.ReadFloat32s(values)
	assert.Equal(t, []float32{3, 4}, values)
	require.NoError(t, r.Err())

	r.ReadUInt8()
	assert.Error(t, r.Err(), "everything was read")
}

func TestTruncatedRead(t *testing.T) {
	w := NewBinWriter()
	w.WriteString("terrain")

	data := w.GetWriteBytes()
	r := NewBinReader(data[:len(data)-2])
	assert.Equal(t, "", r.ReadString())
	assert.Error(t, r.Err())
	assert.Equal(t, uint32(0), r.ReadUInt32(), "sticky error")
}

func TestLittleEndian(t *testing.T) {
	w := NewBinWriter()
	w.WriteUInt32(uint32(1))
	assert.Equal(t, []byte{1, 0, 0, 0}, w.GetWriteBytes())
}
