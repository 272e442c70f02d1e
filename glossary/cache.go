package glossary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Separator splits the fields of a cache record:
//
//	word|||translation|||definition
const Separator = "|||"

var ErrMalformedCache = errors.New("malformed cache record")

type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("unexpected cache value on line %d (delete the cache file to start over): %q", e.Line, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedCache
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// FormatRecord renders one cache line, without the trailing newline. Line
// breaks inside fields are flattened to spaces.
func FormatRecord(word string, e Entry) string {
	return strings.Join([]string{
		lineBreaks.Replace(word),
		lineBreaks.Replace(e.Translation),
		lineBreaks.Replace(e.Definition),
	}, Separator)
}

func parseRecord(line string) (string, Entry, bool) {
	parts := strings.Split(line, Separator)
	if len(parts) != 3 {
		return "", Entry{}, false
	}
	return parts[0], Entry{Translation: parts[1], Definition: parts[2]}, true
}

// Load reads cache records from r into g and returns how many records were
// read. Blank lines are skipped. Reading stops at the first malformed line.
func Load(r io.Reader, g *Glossary) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var n, lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, e, ok := parseRecord(line)
		if !ok {
			return n, &MalformedLineError{Line: lineNum, Text: line}
		}
		g.Add(word, e)
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("reading cache: %w", err)
	}
	return n, nil
}

// LoadFile is Load over the file at path. A missing file is an empty cache.
func LoadFile(path string, g *Glossary) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := Load(f, g)
	if err != nil {
		return n, fmt.Errorf("loading %s: %w", path, err)
	}
	return n, nil
}

// CacheWriter appends records to a cache. Each record is written through
// immediately, so an interrupted run keeps everything appended so far.
type CacheWriter struct {
	w      io.Writer
	closer io.Closer
}

func NewCacheWriter(w io.Writer) *CacheWriter {
	cw := &CacheWriter{w: w}
	if c, ok := w.(io.Closer); ok {
		cw.closer = c
	}
	return cw
}

// OpenCache opens path for appending, creating it and its directory if needed.
func OpenCache(path string) (*CacheWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return NewCacheWriter(f), nil
}

func (cw *CacheWriter) Append(word string, e Entry) error {
	if _, err := io.WriteString(cw.w, FormatRecord(word, e)+"\n"); err != nil {
		return fmt.Errorf("appending %q to cache: %w", word, err)
	}
	return nil
}

func (cw *CacheWriter) Close() error {
	if cw.closer == nil {
		return nil
	}
	return cw.closer.Close()
}
