// SPDX-License-Identifier: MIT

package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Formats lists the supported band table formats.
var Formats = []string{"tsv", "jsonl"}

// StartBandWriter spins up a writer goroutine for band rows in the given
// format. header only applies to "tsv". Broken pipes are not reported.
func StartBandWriter(out io.Writer, format string, header bool, bufSize int) (chan<- Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		var err error
		switch format {
		case "tsv":
			err = streamTSV(bw, in, header)
		case "jsonl":
			err = streamJSONL(bw, in)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		if err == nil {
			err = bw.Flush()
		}
		// Drain so producers never block after a failure.
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

func streamTSV(w io.Writer, in <-chan Row, header bool) error {
	first := true
	for r := range in {
		if first && header {
			cols := []string{"index", "kx", "ky", "kz", "distance", "label"}
			for b := range r.Energies {
				cols = append(cols, "band"+strconv.Itoa(b))
			}
			if _, err := io.WriteString(w, strings.Join(cols, "\t")+"\n"); err != nil {
				return err
			}
		}
		first = false

		f := make([]string, 0, 6+len(r.Energies))
		f = append(f,
			strconv.Itoa(r.Index),
			ftoa(r.K[0]), ftoa(r.K[1]), ftoa(r.K[2]),
			ftoa(r.Distance),
			r.Label,
		)
		for _, e := range r.Energies {
			f = append(f, ftoa(e))
		}
		if _, err := io.WriteString(w, strings.Join(f, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func streamJSONL(w io.Writer, in <-chan Row) error {
	enc := json.NewEncoder(w)
	for r := range in {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func ftoa(x float64) string { return strconv.FormatFloat(x, 'f', 6, 64) }
