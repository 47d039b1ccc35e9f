package audio

import (
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/spirosim/internal/spiro"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Scope plays a curve as stereo audio for an XY oscilloscope: x drives the
// left channel and y the right. It owns its own Curve, advanced once per
// sample from the audio callback.
type Scope struct {
	Stream *portaudio.Stream

	// Frequency is the carrier rate in Hz: one full turn of phi per cycle.
	Frequency float64
	Volume    float64
	// Cutoff of the one-pole low-pass per channel; 0 disables it.
	Cutoff float64

	mu          sync.Mutex
	curve       *spiro.Curve
	filterState [2]float64
	Active      bool
}

// NewScope builds a scope curve from p, replacing its step with the one
// matching frequency at SampleRate. The screen ratio is forced to 1.
func NewScope(p spiro.CurveParams, frequency, volume float64) (*Scope, error) {
	if !(frequency > 0) || math.IsInf(frequency, 0) {
		return nil, &spiro.ParamError{Param: "frequency", Value: frequency, Err: spiro.ErrInvalidParameter}
	}
	curve, err := spiro.NewCurve(scopeParams(p, frequency))
	if err != nil {
		return nil, err
	}
	return &Scope{
		Frequency: frequency,
		Volume:    volume,
		curve:     curve,
	}, nil
}

func scopeParams(p spiro.CurveParams, frequency float64) spiro.CurveParams {
	p.DeltaPhi = 2 * math.Pi * frequency / SampleRate
	p.ScreenRatio = 1
	return p
}

// SetParams swaps the geometry while playing.
func (s *Scope) SetParams(p spiro.CurveParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.curve.SetParams(scopeParams(p, s.Frequency))
}

func (s *Scope) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.Process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	log.Info("audio stream started", "rate", SampleRate, "frequency", s.Frequency)

	s.Stream = stream
	s.Active = true
	return nil
}

func (s *Scope) Stop() {
	if s.Stream != nil {
		s.Stream.Stop()
		s.Stream.Close()
		s.Stream = nil
	}
	portaudio.Terminate()
	s.Active = false
	log.Info("audio stream stopped")
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Process fills a non-interleaved stereo buffer with curve samples.
func (s *Scope) Process(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	for i := range out[0] {
		p := s.curve.Advance()
		l, r := p.X, p.Y
		if s.Cutoff > 0 {
			s.filterState[0] = lpf(l, s.Cutoff, dt, s.filterState[0])
			s.filterState[1] = lpf(r, s.Cutoff, dt, s.filterState[1])
			l, r = s.filterState[0], s.filterState[1]
		}
		out[0][i] = clip(l * s.Volume)
		if len(out) > 1 {
			out[1][i] = clip(r * s.Volume)
		}
	}
}

func clip(v float64) float32 {
	return float32(math.Max(-1, math.Min(1, v)))
}
