package rw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gorustyt/gonavpath/common"
)

// ReaderWriter reads or writes little endian binary dumps. Read errors are
// sticky: once a read fails every following read returns zero values and
// Err reports the first failure.
type ReaderWriter struct {
	order   binary.ByteOrder
	dataBuf []byte
	rw      bytes.Buffer
	err     error
}

func NewBinWriter() *ReaderWriter {
	return &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
}

func NewBinReader(data []byte) *ReaderWriter {
	d := &ReaderWriter{order: binary.LittleEndian, dataBuf: make([]byte, 8)}
	d.rw.Write(data)
	return d
}

func (w *ReaderWriter) Err() error {
	return w.err
}

func (w *ReaderWriter) read(n int) []byte {
	if w.err != nil {
		return nil
	}
	if w.rw.Len() < n {
		w.err = fmt.Errorf("read %d bytes: only %d left", n, w.rw.Len())
		return nil
	}
	_, _ = w.rw.Read(w.dataBuf[:n])
	return w.dataBuf[:n]
}

func (w *ReaderWriter) ReadUInt8() uint8 {
	data := w.read(1)
	if data == nil {
		return 0
	}
	return data[0]
}

func (w *ReaderWriter) ReadBool() bool {
	return w.ReadUInt8() != 0
}

func (w *ReaderWriter) ReadUInt32() uint32 {
	data := w.read(4)
	if data == nil {
		return 0
	}
	return w.order.Uint32(data)
}

func (w *ReaderWriter) ReadFloat32() float32 {
	return math.Float32frombits(w.ReadUInt32())
}

func (w *ReaderWriter) ReadFloat32s(value []float32) {
	for i := range value {
		value[i] = w.ReadFloat32()
	}
}

func (w *ReaderWriter) ReadVec3() (v common.Vec3) {
	w.ReadFloat32s(v[:])
	return v
}

func (w *ReaderWriter) ReadString() string {
	n := int(w.ReadUInt32())
	if w.err != nil {
		return ""
	}
	if w.rw.Len() < n {
		w.err = fmt.Errorf("read string of %d bytes: only %d left", n, w.rw.Len())
		return ""
	}
	return string(w.rw.Next(n))
}

func (w *ReaderWriter) WriteUInt8(value uint8) {
	w.rw.WriteByte(value)
}

func (w *ReaderWriter) WriteBool(value bool) {
	if value {
		w.WriteUInt8(1)
	} else {
		w.WriteUInt8(0)
	}
}

func (w *ReaderWriter) WriteUInt32(v interface{}) {
	switch value := v.(type) {
	case uint32:
		w.order.PutUint32(w.dataBuf, value)
	case int:
		w.order.PutUint32(w.dataBuf, uint32(value))
	case int32:
		w.order.PutUint32(w.dataBuf, uint32(value))
	default:
		panic("not impl")
	}
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32(value float32) {
	w.order.PutUint32(w.dataBuf, math.Float32bits(value))
	w.rw.Write(w.dataBuf[:4])
}

func (w *ReaderWriter) WriteFloat32s(value []float32) {
	for _, tmp := range value {
		w.WriteFloat32(tmp)
	}
}

func (w *ReaderWriter) WriteVec3(v common.Vec3) {
	w.WriteFloat32s(v[:])
}

func (w *ReaderWriter) WriteString(value string) {
	w.WriteUInt32(len(value))
	w.rw.WriteString(value)
}

func (w *ReaderWriter) GetWriteBytes() (res []byte) {
	res = w.rw.Bytes()
	return res
}
