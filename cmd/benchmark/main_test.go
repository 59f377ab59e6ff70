package main

import (
	"testing"

	"github.com/limaJavier/permtable/pkg/permutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	scenarios := map[string][]uint64{
		"1-4":     {1, 2, 3, 4},
		"7-7":     {7},
		" 2 - 3 ": {2, 3},
		"4, 8,10": {4, 8, 10},
		"5":       {5},
	}
	for list, expected := range scenarios {
		values, err := parseList(list)
		require.NoError(t, err, list)
		assert.Equal(t, expected, values, list)
	}

	for _, list := range []string{"", "4-1", "a-3", "1,b", "1,,2"} {
		_, err := parseList(list)
		assert.Error(t, err, list)
	}
}

func TestGetBuilds(t *testing.T) {
	builds := getBuilds([]uint64{3, 4}, []int{1, 2})

	assert.Len(t, builds, 8)
	assert.Equal(t, BuildMetadata{Limit: 3, Workers: 1, Order: permutation.Descending}, builds[0])
	assert.Equal(t, BuildMetadata{Limit: 4, Workers: 2, Order: permutation.Ascending}, builds[7])
}

func TestMeasureFingerprintsAgree(t *testing.T) {
	results := []BenchmarkResult{
		measure(BuildMetadata{Limit: 5, Workers: 1, Order: permutation.Descending}),
		measure(BuildMetadata{Limit: 5, Workers: 3, Order: permutation.Ascending}),
	}

	assert.Equal(t, uint64(120), results[0].Columns)
	assert.Equal(t, results[0].Fingerprint, results[1].Fingerprint)
	assert.NotPanics(t, func() { checkFingerprints(results) })
}
