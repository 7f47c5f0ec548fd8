package sketch

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WriteBinary serializes s to w in the fixed little-endian layout:
//
//	offset 0 : float64 f
//	offset 8 : uint64  a[0] .. a[C*R-1]
//	         : uint64  c_hash[0] .. c_hash[C*R-1]
//
// N and Seed are not written; ReadBinary takes them out-of-band, matching
// the contract that callers already know which universe and seed a
// sketch belongs to before they deserialize it.
func (s *Sketch) WriteBinary(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, 8*(1+2*len(s.a)))
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(s.f))
	off := 8
	for _, v := range s.a {
		binary.LittleEndian.PutUint64(buf[off:off+8], v)
		off += 8
	}
	for _, v := range s.cHash {
		binary.LittleEndian.PutUint64(buf[off:off+8], v)
		off += 8
	}

	_, err := w.Write(buf)

	return err
}

// ReadBinary deserializes a Sketch from r using the layout WriteBinary
// produces, given the out-of-band universe size n and hash seed. C and R
// are recomputed deterministically from (n, f) exactly as New does, so a
// corrupted or mismatched f changes how many bucket bytes are read. If r
// holds fewer bytes than that, ReadBinary returns an error; bytes beyond
// that count are left unread and are not reported.
func ReadBinary(r io.Reader, n, seed uint64) (*Sketch, error) {
	var head [8]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("sketch: reading f: %w", err)
	}
	f := math.Float64frombits(binary.LittleEndian.Uint64(head[:]))

	s := New(n, seed, f)
	body := make([]byte, 8*2*len(s.a))
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("sketch: reading buckets: %w", err)
	}

	off := 0
	for i := range s.a {
		s.a[i] = binary.LittleEndian.Uint64(body[off : off+8])
		off += 8
	}
	for i := range s.cHash {
		s.cHash[i] = binary.LittleEndian.Uint64(body[off : off+8])
		off += 8
	}

	return s, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Sketch) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.WriteBinary(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver must
// already carry the correct N and Seed (e.g. via New); UnmarshalBinary
// replaces its F, C, R, and bucket contents with the decoded values and
// clears the already-queried flag, since unmarshaling produces a fresh,
// unqueried sketch value.
func (s *Sketch) UnmarshalBinary(data []byte) error {
	decoded, err := ReadBinary(bytes.NewReader(data), s.n, s.seed)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.f = decoded.f
	s.c = decoded.c
	s.r = decoded.r
	s.a = decoded.a
	s.cHash = decoded.cHash
	s.queried = false

	return nil
}
