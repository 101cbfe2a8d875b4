package frames

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadOffsetsCSV reads sweep offsets from a CSV file. The header must name
// an offset column: offset|angle|theta in radians, or offset_deg|degrees|deg
// in degrees. Rows that do not parse are skipped.
func LoadOffsetsCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("keyframes: empty csv")
	}
	idx, scale := -1, 1.0
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "offset", "angle", "theta":
			if idx == -1 {
				idx = i
			}
		case "offset_deg", "degrees", "deg":
			if idx == -1 {
				idx, scale = i, math.Pi/180
			}
		}
	}
	if idx == -1 {
		return nil, errors.New("keyframes: offset column not found")
	}
	var offsets []float64
	for _, row := range recs[1:] {
		if idx >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		offsets = append(offsets, v*scale)
	}
	if len(offsets) == 0 {
		return nil, errors.New("keyframes: no valid offsets parsed")
	}
	return offsets, nil
}
