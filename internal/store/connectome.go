package store

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// LoadConnectome reads a square weight matrix from a CSV file, one row
// per region.
func LoadConnectome(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	weights := make([][]float64, len(records))
	for i, record := range records {
		if len(record) != len(records) {
			return nil, fmt.Errorf("connectome not square: row %d has %d columns for %d rows", i, len(record), len(records))
		}
		weights[i] = make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			weights[i][j] = v
		}
	}
	return weights, nil
}

// SyntheticConnectome builds a random symmetric weight matrix with zero
// diagonal, normalized so each region's incoming strength is at most 1.
// Useful for demos and tests when no empirical connectome is at hand.
func SyntheticConnectome(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64()
			w[i][j] = v
			w[j][i] = v
		}
	}
	for i := range w {
		sum := 0.0
		for _, v := range w[i] {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j := range w[i] {
			w[i][j] /= sum
		}
	}
	return w
}
