// Package midifile writes a scale as a Standard MIDI File: one track, the
// notes played upward one after another. It is an export format, not a
// real-time player.
package midifile

import (
	"errors"
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	// ErrNoNotes is returned when there is nothing to write.
	ErrNoNotes = errors.New("midifile: no notes")

	// ErrNoteRange is returned when a note falls outside MIDI keys 0–127.
	ErrNoteRange = errors.New("midifile: note outside MIDI range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("midifile: invalid option supplied")
)

// Resolution is the number of ticks per quarter note in written files.
const Resolution = 480

// Options controls how notes are written.
type Options struct {
	// Channel is the MIDI channel, 0–15.
	Channel uint8

	// Velocity of every note-on, 1–127.
	Velocity uint8

	// Base is the key number of semitone offset 0 (60 = middle C).
	Base int

	// Length is the duration of each note in ticks.
	Length uint32

	// BPM sets the tempo meta event.
	BPM float64

	// Name is written as the track name when non-empty.
	Name string

	err error
}

// Option configures Write.
type Option func(*Options)

// DefaultOptions returns channel 0, velocity 100, middle C, quarter notes at
// 120 BPM.
func DefaultOptions() Options {
	return Options{
		Velocity: 100,
		Base:     60,
		Length:   Resolution,
		BPM:      120,
	}
}

// WithChannel selects the MIDI channel.
func WithChannel(ch int) Option {
	return func(o *Options) {
		if ch < 0 || ch > 15 {
			o.err = fmt.Errorf("%w: channel %d", ErrOptionViolation, ch)
			return
		}
		o.Channel = uint8(ch)
	}
}

// WithVelocity sets the note-on velocity.
func WithVelocity(v int) Option {
	return func(o *Options) {
		if v < 1 || v > 127 {
			o.err = fmt.Errorf("%w: velocity %d", ErrOptionViolation, v)
			return
		}
		o.Velocity = uint8(v)
	}
}

// WithBase sets the key number played for offset 0.
func WithBase(key int) Option {
	return func(o *Options) { o.Base = key }
}

// WithLength sets each note's duration in ticks.
func WithLength(ticks uint32) Option {
	return func(o *Options) {
		if ticks == 0 {
			o.err = fmt.Errorf("%w: zero note length", ErrOptionViolation)
			return
		}
		o.Length = ticks
	}
}

// WithBPM sets the tempo.
func WithBPM(bpm float64) Option {
	return func(o *Options) {
		if bpm <= 0 {
			o.err = fmt.Errorf("%w: bpm %v", ErrOptionViolation, bpm)
			return
		}
		o.BPM = bpm
	}
}

// WithName sets the track name.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// Write encodes offsets (semitones above Base, as from pitch.Offsets) as a
// single-track SMF and writes it to w.
func Write(w io.Writer, offsets []int, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if len(offsets) == 0 {
		return ErrNoNotes
	}

	keys := make([]uint8, len(offsets))
	for i, off := range offsets {
		k := o.Base + off
		if k < 0 || k > 127 {
			return fmt.Errorf("%w: key %d at position %d", ErrNoteRange, k, i)
		}
		keys[i] = uint8(k)
	}

	var tr smf.Track
	if o.Name != "" {
		tr.Add(0, smf.MetaTrackSequenceName(o.Name))
	}
	tr.Add(0, smf.MetaTempo(o.BPM))
	for _, k := range keys {
		tr.Add(0, midi.NoteOn(o.Channel, k, o.Velocity))
		tr.Add(o.Length, midi.NoteOff(o.Channel, k))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(Resolution)
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("midifile: add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("midifile: write: %w", err)
	}
	return nil
}
