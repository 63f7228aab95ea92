// Package recording stores the inputs and outcomes of a character run so it can be replayed and checked
// later.
package recording

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/disgoorg/json"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/game"
	"github.com/oomph-ac/waddle/input"
	"github.com/oomph-ac/waddle/internal"
	"github.com/oomph-ac/waddle/locomotion"
	"github.com/oomph-ac/waddle/oerror"
	"github.com/oomph-ac/waddle/sim"
	"github.com/zeebo/xxh3"
)

const CurrentRecordingVer = "1"

// fingerprintPrecision is the number of decimals kept before hashing, so that results which differ only by
// float noise share a fingerprint.
const fingerprintPrecision = 4

// Header describes how the recorded character was spawned.
type Header struct {
	Name    string
	Spawn   mgl32.Vec3
	Heading float32
	DT      float32
}

// Frame is one recorded tick.
type Frame struct {
	Tick     uint64
	Input    input.Snapshot
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Mode     locomotion.Mode
	Grounded bool
	// Fingerprint is a hash over the rounded state of the tick.
	Fingerprint uint64
}

// Recording is a header and the frames recorded after it.
type Recording struct {
	Version string
	Header  Header
	Frames  []Frame
}

// New returns an empty recording for a character spawned as described by h.
func New(h Header) *Recording {
	return &Recording{Version: CurrentRecordingVer, Header: h}
}

// Add records the input of a tick together with its result.
func (r *Recording) Add(in input.Snapshot, res sim.Result) {
	r.Frames = append(r.Frames, Frame{
		Tick:        res.Tick,
		Input:       in.Sanitized(),
		Position:    res.Position,
		Velocity:    res.Velocity,
		Mode:        res.Mode,
		Grounded:    res.Grounded,
		Fingerprint: Fingerprint(res),
	})
}

// Fingerprint hashes the kinematic and contact state of a result.
func Fingerprint(res sim.Result) uint64 {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)
	buf.Reset()

	var b [8]byte
	writeVec := func(v mgl32.Vec3) {
		for _, f := range game.RoundVec32(v, fingerprintPrecision) {
			// Negative zero and zero must hash the same.
			if f == 0 {
				f = 0
			}
			binary.LittleEndian.PutUint32(b[:4], math.Float32bits(f))
			buf.Write(b[:4])
		}
	}
	binary.LittleEndian.PutUint64(b[:], res.Tick)
	buf.Write(b[:])
	writeVec(res.Position)
	writeVec(res.Velocity)
	writeVec(res.GroundNormal)
	buf.WriteByte(byte(res.Mode))
	if res.Grounded {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	return xxh3.Hash(buf.Bytes())
}

// Write encodes the recording: a version line, a header line and one line per frame.
func Write(w io.Writer, r *Recording) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(r.Version + "\n")

	enc, err := json.Marshal(r.Header)
	if err != nil {
		return fmt.Errorf("unable to encode recording header: %w", err)
	}
	bw.Write(enc)
	bw.WriteString("\n")

	for _, f := range r.Frames {
		enc, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("unable to encode frame %d: %w", f.Tick, err)
		}
		bw.Write(enc)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Read decodes a recording written by Write. It returns an error if the recording could not be parsed, or
// if its version is not supported.
func Read(rd io.Reader) (*Recording, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, oerror.New("recording is empty")
	}
	r := &Recording{Version: strings.TrimSpace(sc.Text())}
	if r.Version != CurrentRecordingVer {
		return nil, oerror.New("unsupported recording version %q (current: %s)", r.Version, CurrentRecordingVer)
	}

	if !sc.Scan() {
		return nil, oerror.New("recording has no header")
	}
	if err := json.Unmarshal(sc.Bytes(), &r.Header); err != nil {
		return nil, fmt.Errorf("unable to decode recording header: %w", err)
	}

	for line := 3; sc.Scan(); line++ {
		if len(bytes.TrimSpace(sc.Bytes())) == 0 {
			continue
		}
		var f Frame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			return nil, fmt.Errorf("unable to decode frame on line %d: %w", line, err)
		}
		r.Frames = append(r.Frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read recording: %w", err)
	}
	return r, nil
}

// Mismatch is a frame whose replayed fingerprint differs from the recorded one.
type Mismatch struct {
	Tick                            uint64
	WantFingerprint, GotFingerprint uint64
	WantPos, GotPos                 mgl32.Vec3
	WantMode, GotMode               locomotion.Mode
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("tick %d diverged: recorded %v at %v, replayed %v at %v", m.Tick, m.WantMode, m.WantPos, m.GotMode, m.GotPos)
}

// Verify replays the recorded inputs on a fresh character and returns the first frame that diverges, or
// nil if every fingerprint matches.
func Verify(r *Recording, s *sim.Simulator, opts sim.Options) error {
	c := sim.NewCharacter(opts, r.Header.Spawn, r.Header.Heading)
	for _, f := range r.Frames {
		res := s.Simulate(c, f.Input, r.Header.DT)
		if fp := Fingerprint(res); fp != f.Fingerprint {
			return Mismatch{
				Tick:            f.Tick,
				WantFingerprint: f.Fingerprint,
				GotFingerprint:  fp,
				WantPos:         f.Position,
				GotPos:          res.Position,
				WantMode:        f.Mode,
				GotMode:         res.Mode,
			}
		}
	}
	return nil
}
