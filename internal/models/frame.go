package models

// Frame is one scoring unit for a player. Absent values are nil.
type Frame struct {
	// Ball1 is the number of pins knocked down by the first ball
	Ball1 *int

	// Ball2 is the number of pins knocked down by the second ball.
	// It stays nil for a strike.
	Ball2 *int

	// IsStrike is true when Ball1 downed every pin
	IsStrike bool

	// IsSpare is true when Ball1 and Ball2 together downed every pin
	IsSpare bool

	// FrameScore is the frame's contribution to the total once bonus balls resolve it
	FrameScore *int

	// RunningTotal is the cumulative score through this frame
	RunningTotal *int
}

// IsComplete reports whether no more balls belong to this frame
func (f *Frame) IsComplete() bool {
	if f == nil || f.Ball1 == nil {
		return false
	}
	return f.IsStrike || f.Ball2 != nil
}

// IsOpen reports whether the frame is complete without a strike or spare
func (f *Frame) IsOpen() bool {
	return f.IsComplete() && !f.IsStrike && !f.IsSpare
}

// Pins returns the total pins knocked down in this frame so far
func (f *Frame) Pins() int {
	if f == nil {
		return 0
	}
	return IntValue(f.Ball1) + IntValue(f.Ball2)
}

// Clone returns a copy that shares no memory with f
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	return &Frame{
		Ball1:        copyInt(f.Ball1),
		Ball2:        copyInt(f.Ball2),
		IsStrike:     f.IsStrike,
		IsSpare:      f.IsSpare,
		FrameScore:   copyInt(f.FrameScore),
		RunningTotal: copyInt(f.RunningTotal),
	}
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}

// IntValue dereferences p, treating nil as zero
func IntValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
