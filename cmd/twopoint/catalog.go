package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/twopoint/correlation"
	"github.com/katalvlaran/twopoint/pairs"
)

// readCatalog loads a whitespace-separated text catalog, one point per line.
// Blank lines and lines starting with '#' are skipped.
func readCatalog(path string) (pairs.Points, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := parseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

func parseCatalog(r io.Reader) (pairs.Points, error) {
	var pts pairs.Points
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(pts) > 0 && len(fields) != len(pts[0]) {
			return nil, fmt.Errorf("line %d has %d columns, want %d: %w", line, len(fields), len(pts[0]), pairs.ErrDimensionMismatch)
		}
		p := make([]float64, len(fields))
		for i, s := range fields {
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = x
		}
		pts = append(pts, p)
	}

	return pts, sc.Err()
}

// writeResult prints one line per bin, "lo hi xi [err]", under a "# xiNN"
// header for every term of a cross-correlation.
func writeResult(w io.Writer, edges []float64, res correlation.JackknifeResult) error {
	if res.Auto {
		return writeTerm(w, edges, res.XI11, res.Err11)
	}
	terms := []struct {
		name    string
		xi, err []float64
	}{
		{"xi11", res.XI11, res.Err11},
		{"xi12", res.XI12, res.Err12},
		{"xi22", res.XI22, res.Err22},
	}
	for _, t := range terms {
		if t.xi == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "# %s\n", t.name); err != nil {
			return err
		}
		if err := writeTerm(w, edges, t.xi, t.err); err != nil {
			return err
		}
	}

	return nil
}

func writeTerm(w io.Writer, edges, xi, errs []float64) error {
	for i, v := range xi {
		var err error
		if errs != nil {
			_, err = fmt.Fprintf(w, "%g %g %.6g %.6g\n", edges[i], edges[i+1], v, errs[i])
		} else {
			_, err = fmt.Fprintf(w, "%g %g %.6g\n", edges[i], edges[i+1], v)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
