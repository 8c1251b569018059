package animation

import (
	"math"
	"time"

	"github.com/go-drift/keyframe/pkg/timetick"
)

// Playhead maps wall-clock time onto a timeline position.
//
// A Playhead starts paused at its origin. While playing, the position advances
// by Rate timeline units per wall-clock second, read from the package [Clock].
// It is not safe for concurrent use.
type Playhead struct {
	// Rate is timeline units per second. Negative rates play backwards.
	Rate float64

	anchor   timetick.TimeTick
	start    time.Time
	playing  bool
	loop     bool
	loopFrom timetick.TimeTick
	loopTo   timetick.TimeTick
}

// NewPlayhead returns a paused playhead at origin playing at rate 1.
func NewPlayhead(origin timetick.TimeTick) *Playhead {
	return &Playhead{Rate: 1, anchor: origin}
}

// Position returns the current timeline position.
func (p *Playhead) Position() timetick.TimeTick {
	pos := p.anchor
	if p.playing {
		elapsed := Now().Sub(p.start).Seconds()
		pos = pos.Add(timetick.New(elapsed * p.Rate))
	}
	if p.loop {
		pos = wrap(pos, p.loopFrom, p.loopTo)
	}
	return pos
}

// IsPlaying reports whether the playhead is advancing.
func (p *Playhead) IsPlaying() bool {
	return p.playing
}

// Play starts advancing from the current position.
func (p *Playhead) Play() {
	if p.playing {
		return
	}
	p.start = Now()
	p.playing = true
}

// Pause freezes the playhead at its current position.
func (p *Playhead) Pause() {
	if !p.playing {
		return
	}
	p.anchor = p.Position()
	p.playing = false
}

// Seek jumps to pos without changing the play state.
func (p *Playhead) Seek(pos timetick.TimeTick) {
	p.anchor = pos
	if p.playing {
		p.start = Now()
	}
}

// SetRate changes the playback rate without a jump in position.
func (p *Playhead) SetRate(rate float64) {
	p.Seek(p.Position())
	p.Rate = rate
}

// Loop wraps the position into [from, to). An empty or inverted range
// disables looping.
func (p *Playhead) Loop(from, to timetick.TimeTick) {
	if !from.Less(to) {
		p.loop = false
		return
	}
	p.loop = true
	p.loopFrom, p.loopTo = from, to
}

func wrap(pos, from, to timetick.TimeTick) timetick.TimeTick {
	span := to.Sub(from).Value()
	off := pos.Sub(from).Value()
	off -= span * math.Floor(off/span)
	return from.Add(timetick.New(off))
}
