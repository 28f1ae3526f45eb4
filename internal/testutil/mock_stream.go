package testutil

// ScriptedStream implements sprites.Stream by replaying fixed values.
// Floats and ints are consumed independently and wrap around when exhausted.
type ScriptedStream struct {
	Floats []float64
	Ints   []int

	FloatCalls int
	IntCalls   int
}

func (s *ScriptedStream) Float64() float64 {
	if len(s.Floats) == 0 {
		s.FloatCalls++
		return 0
	}
	v := s.Floats[s.FloatCalls%len(s.Floats)]
	s.FloatCalls++
	return v
}

// IntN returns the next scripted int reduced modulo n.
func (s *ScriptedStream) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}
	if len(s.Ints) == 0 {
		s.IntCalls++
		return 0
	}
	v := s.Ints[s.IntCalls%len(s.Ints)]
	s.IntCalls++
	return v % n
}

// Always returns a stream whose Float64 always yields f.
func Always(f float64) *ScriptedStream {
	return &ScriptedStream{Floats: []float64{f}}
}
