// Copyright (c) 2025, Benjamin Haase.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"fmt"
	"strings"
)

// Difficulty rates how hard a recipe is to prepare, on a closed scale of
// four levels. Levels are ordered ascending (Easy < Medium < Hard < Expert),
// so values sort and compare with the usual integer operators.
type Difficulty uint8

// Difficulty levels in ascending order of effort. The zero value is not a
// recognized level.
const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

// Difficulties returns all recognized difficulty levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

// SupportedDifficulties returns the names of all recognized difficulty
// levels, for flag usage text and error messages.
func SupportedDifficulties() []string {
	levels := Difficulties()
	names := make([]string, len(levels))
	for i, d := range levels {
		names[i] = d.String()
	}
	return names
}

// String returns the lowercase name of the difficulty level, or "unknown"
// for values outside the recognized set.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// IsValid checks if the Difficulty is one of the recognized levels.
func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyExpert
}

// Compare returns -1 if d is easier than other, 0 if they are the same
// level, and 1 if d is harder. Useful for sorting recipes by difficulty.
func (d Difficulty) Compare(other Difficulty) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}

// ParseDifficulty parses a difficulty name into a Difficulty. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "expert":
		return DifficultyExpert, nil
	default:
		return 0, fmt.Errorf("invalid difficulty: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so difficulties serialize
// as their names rather than raw numbers.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid difficulty: %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
