package textfile

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment is one loaded piece of a text file.
type Fragment struct {
	Pos  int64  // byte offset of the fragment within the file
	Text string // fragment content
}

// Load reads a whole text file and returns its content.
//
// The file must be a regular file holding valid UTF-8.
func Load(name string) (string, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return "", err
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegularFile, name)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, name)
	}
	tracer().Debugf("textfile: loaded %d bytes from %s", len(content), name)
	return string(content), nil
}

// Stream delivers a text file as a sequence of fragments, read by a
// background goroutine and broadcast to every subscriber.
//
// Loading starts with the first call to Fragments. Subscribers joining
// after loading started only observe fragments still pending; clients
// that need the whole file subscribe before consuming.
type Stream struct {
	size     int64
	fragSize int64
	file     *os.File
	cast     *caster.Caster // broadcasts loaded fragments
	once     sync.Once
	mu       sync.Mutex
	lastErr  error
}

// LoadStream opens a text file for fragment-wise loading.
//
// fragSize is a recommended fragment length in bytes; a non-positive or
// oversized value selects a default derived from the file size.
func LoadStream(name string, fragSize int64) (*Stream, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if fragSize <= 0 || fragSize > tenKb {
		switch {
		case size < 64:
			fragSize = size
		case size < 1024:
			fragSize = 64
		case size < tenKb:
			fragSize = 256
		case size < hundredKb:
			fragSize = 512
		case size < oneMb:
			fragSize = twoKb
		default:
			fragSize = sixKb
		}
	}
	return &Stream{
		size:     size,
		fragSize: fragSize,
		file:     file,
		cast:     caster.New(nil),
	}, nil
}

// Size returns the file size in bytes.
func (s *Stream) Size() int64 {
	return s.size
}

// Fragments subscribes to the fragment broadcast.
//
// The returned channel delivers fragments in file order and is closed
// when the file has been read completely or loading failed; in the
// latter case Err reports the cause.
func (s *Stream) Fragments() <-chan Fragment {
	out := make(chan Fragment, 1)
	ch, ok := s.cast.Sub(nil, 1)
	if !ok { // broadcast already closed
		close(out)
		return out
	}
	go func() {
		for m := range ch {
			out <- m.(Fragment)
		}
		close(out)
	}()
	s.once.Do(func() {
		go s.loadAll()
	})
	return out
}

// Err returns the first error encountered while streaming, if any.
// It is meaningful after the fragment channel has been closed.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Stream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr == nil {
		s.lastErr = err
	}
}

// loadAll reads the file fragment by fragment and publishes every loaded
// fragment to the broadcaster. Runs in its own goroutine.
func (s *Stream) loadAll() {
	defer s.cast.Close()
	defer func() {
		if err := s.file.Close(); err != nil {
			tracer().Errorf("textfile: closing %s: %v", s.file.Name(), err)
		}
	}()
	for pos := int64(0); pos < s.size; pos += s.fragSize {
		n := s.fragSize
		if rest := s.size - pos; rest < n {
			n = rest
		}
		buf := make([]byte, n)
		cnt, err := s.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			s.setErr(fmt.Errorf("textfile: loading fragment at %d: %w", pos, err))
			tracer().Errorf("textfile: loading fragment at %d: %v", pos, err)
			return
		}
		if int64(cnt) < n {
			s.setErr(fmt.Errorf("%w: at %d", ErrFragmentTruncated, pos))
			return
		}
		s.cast.Pub(Fragment{Pos: pos, Text: string(buf)})
	}
	tracer().Debugf("textfile: streamed %d bytes in fragments of %d", s.size, s.fragSize)
}
