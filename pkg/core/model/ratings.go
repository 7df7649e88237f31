package model

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadRatings reads a ratings CSV with "player" and "rating" header columns.
// Rows with a blank player or a non-numeric (or NaN) rating are skipped.
func LoadRatings(path string) (RatingMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ratings file: %w", err)
	}
	defer f.Close()

	return ParseRatings(f)
}

// ParseRatings parses ratings CSV content from r
func ParseRatings(r io.Reader) (RatingMap, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ratings file is empty")
		}
		return nil, fmt.Errorf("failed to read ratings header: %w", err)
	}

	playerCol, ratingCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "player":
			playerCol = i
		case "rating":
			ratingCol = i
		}
	}
	if playerCol < 0 || ratingCol < 0 {
		return nil, fmt.Errorf("ratings file must have player and rating columns, got %v", header)
	}

	ratings := make(RatingMap)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read ratings line %d: %w", line, err)
		}

		if playerCol >= len(record) || ratingCol >= len(record) {
			continue
		}

		player := strings.TrimSpace(record[playerCol])
		if player == "" {
			continue
		}

		rating, err := strconv.ParseFloat(strings.TrimSpace(record[ratingCol]), 64)
		if err != nil || math.IsNaN(rating) {
			continue
		}
		if rating < 0 {
			return nil, fmt.Errorf("player %q has negative rating %v on line %d", player, rating, line)
		}

		ratings[player] = rating
	}

	return ratings, nil
}
