package main

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"slices"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion
// and SimulationVersion as the ones in the executable.
const InputVersion = 1

// Playthrough represents all the input sent to a World during a session.
// Given this input and a compatible simulation, the same World is obtained
// every time.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Id                uuid.UUID
	Seed              int64
	ViewportSize      Pt
	History           []PlayerInput
}

func NewPlaythrough(seed int64, viewport Pt) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = ReleaseVersion
	p.Id = uuid.New()
	p.Seed = seed
	p.ViewportSize = viewport
	return
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	Serialize(buf, p.ViewportSize)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"version %d",
			InputVersion, p.InputVersion))
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.Seed)
	Deserialize(buf, &p.ViewportSize)
	DeserializeSlice(buf, &p.History)
	return
}

// Replay builds the World of the playthrough and steps it through the first
// nFrames inputs.
func (p *Playthrough) Replay(nFrames int64) World {
	w := NewWorldFromPlaythrough(*p)
	for i := range min(nFrames, int64(len(p.History))) {
		w.Step(p.History[i])
	}
	return w
}
