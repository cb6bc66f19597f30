package frequency

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadCSV reads a "word,frequency" CSV frequency artifact (spec §6). No
// header row is required; blank lines are skipped. Values must be positive
// integers, matching the FrequencyTable invariant in spec §3.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.ReuseRecord = true

	counts := make(map[string]int)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
		}
		word := strings.TrimSpace(record[0])
		if word == "" {
			continue
		}
		freq, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil || freq < 1 {
			return nil, fmt.Errorf("%w: invalid frequency for %q", ErrCorruptArtifact, word)
		}
		counts[word] = freq
	}
	return NewTable(counts), nil
}

// LoadCSVFile opens path and delegates to LoadCSV.
func LoadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingArtifact, err)
	}
	defer f.Close()
	return LoadCSV(bufio.NewReader(f))
}

// gobPayload is the opaque binary encoding of a frequency table (spec §6,
// "binary container: an opaque serialized mapping from string to integer").
// gob is used rather than a project-specific format so the artifact can be
// produced and inspected with stdlib tooling alone.
type gobPayload struct {
	Counts map[string]int
}

// LoadBinary reads the opaque binary container format described in spec
// §6. When gzipped is true the stream is unwrapped with gzip first,
// matching the ".pklz" extension convention; otherwise it is read raw.
func LoadBinary(r io.Reader, gzipped bool) (*Table, error) {
	src := r
	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
		}
		defer gz.Close()
		src = gz
	}

	var payload gobPayload
	if err := gob.NewDecoder(src).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptArtifact, err)
	}
	return NewTable(payload.Counts), nil
}

// SaveBinary writes table to w in the binary container format read back by
// LoadBinary. When gzipped is true the stream is gzip-wrapped.
func SaveBinary(w io.Writer, table *Table, gzipped bool) error {
	dst := w
	var gz *gzip.Writer
	if gzipped {
		gz = gzip.NewWriter(w)
		dst = gz
	}

	payload := gobPayload{Counts: make(map[string]int, table.Len())}
	for token, count := range snapshot(table) {
		payload.Counts[token] = count
	}
	if err := gob.NewEncoder(dst).Encode(payload); err != nil {
		return err
	}
	if gz != nil {
		return gz.Close()
	}
	return nil
}

func snapshot(t *Table) map[string]int {
	if t == nil {
		return nil
	}
	return t.counts
}

// LoadBinaryFile opens path and delegates to LoadBinary, inferring the
// gzip wrapping from the ".pklz" extension (spec §6).
func LoadBinaryFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingArtifact, err)
	}
	defer f.Close()
	return LoadBinary(bufio.NewReader(f), strings.EqualFold(filepath.Ext(path), ".pklz"))
}

// LoadFile dispatches to LoadCSVFile or LoadBinaryFile based on the file
// extension: ".csv" is read as CSV, anything else (including ".pklz" and
// unadorned binary artifacts) is read as the binary container.
func LoadFile(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSVFile(path)
	}
	return LoadBinaryFile(path)
}
