package wire

import (
	"bufio"
	"bytes"
	"errors"
	"sync"
	"testing"
)

// TestWriteFrameSerialized: concurrent writers never interleave their
// units; the output is a sequence of whole frames.
func TestWriteFrameSerialized(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(bufio.NewWriter(&buf))
	defer sink.Close()

	const frameLen = 32
	const framesPerWriter = 50
	letters := []byte{'a', 'b', 'c'}

	var wg sync.WaitGroup
	for _, letter := range letters {
		wg.Add(1)
		go func(letter byte) {
			defer wg.Done()
			frame := bytes.Repeat([]byte{letter}, frameLen)
			for i := 0; i < framesPerWriter; i++ {
				if err := sink.WriteFrame(frame); err != nil {
					t.Errorf("WriteFrame: %v", err)
					return
				}
			}
		}(letter)
	}
	wg.Wait()

	out := buf.Bytes()
	if want := len(letters) * framesPerWriter * frameLen; len(out) != want {
		t.Fatalf("wrote %d bytes, want %d", len(out), want)
	}
	for i := 0; i < len(out); i += frameLen {
		frame := out[i : i+frameLen]
		for _, b := range frame {
			if b != frame[0] {
				t.Fatalf("frame at offset %d interleaved: %q", i, frame)
			}
		}
	}
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }

// TestWriteFrameErrorLatched: the first write failure is reported to the
// caller, closes Done, and is repeated to every later writer.
func TestWriteFrameErrorLatched(t *testing.T) {
	wantErr := errors.New("broken pipe")
	sink := NewSink(bufio.NewWriter(&failingWriter{err: wantErr}))

	if err := sink.WriteFrame([]byte("frame")); !errors.Is(err, wantErr) {
		t.Fatalf("first WriteFrame returned %v, want %v", err, wantErr)
	}
	select {
	case <-sink.Done():
	default:
		t.Fatal("Done not closed after write failure")
	}
	if err := sink.WriteFrame([]byte("another")); !errors.Is(err, wantErr) {
		t.Errorf("later WriteFrame returned %v, want latched %v", err, wantErr)
	}
	if err := sink.Err(); !errors.Is(err, wantErr) {
		t.Errorf("Err() = %v, want %v", err, wantErr)
	}
}

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(bufio.NewWriter(&buf))

	sink.Close()
	sink.Close() // idempotent

	select {
	case <-sink.Done():
	default:
		t.Fatal("Done not closed after Close")
	}
	if err := sink.WriteFrame([]byte("frame")); !errors.Is(err, ErrSinkClosed) {
		t.Errorf("WriteFrame after Close returned %v, want ErrSinkClosed", err)
	}
}
