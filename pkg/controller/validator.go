package controller

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Validator converts a raw answer and decides whether it is acceptable
// Console answers go through Cast then Accept, bot answers only go through Accept
type Validator interface {
	Cast(raw string) (interface{}, error)
	Accept(v interface{}) bool
}

var errNoNumbers = errors.New("no numbers found")

type yesOrNo struct{}

// IsYesOrNo accepts "y" or "n"
func IsYesOrNo() Validator {
	return yesOrNo{}
}

func (yesOrNo) Cast(raw string) (interface{}, error) {
	return strings.ToLower(strings.TrimSpace(raw)), nil
}

func (yesOrNo) Accept(v interface{}) bool {
	s, ok := v.(string)
	return ok && (s == "y" || s == "n")
}

type inSet map[string]bool

// IsInSet accepts any of the options, ignoring case
func IsInSet(options ...string) Validator {
	s := make(inSet, len(options))
	for _, option := range options {
		s[strings.ToLower(option)] = true
	}

	return s
}

func (s inSet) Cast(raw string) (interface{}, error) {
	return strings.ToLower(strings.TrimSpace(raw)), nil
}

func (s inSet) Accept(v interface{}) bool {
	str, ok := v.(string)
	return ok && s[strings.ToLower(str)]
}

type withinRange struct {
	lower, upper int
	exclude      map[int]bool
}

// IsWithinRange accepts a single integer from lower to upper (inclusive) that is not excluded
func IsWithinRange(lower, upper int, exclude ...int) Validator {
	return withinRange{
		lower:   lower,
		upper:   upper,
		exclude: toSet(exclude),
	}
}

func (w withinRange) Cast(raw string) (interface{}, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func (w withinRange) Accept(v interface{}) bool {
	i, ok := v.(int)
	return ok && w.accepts(i)
}

func (w withinRange) accepts(i int) bool {
	return i >= w.lower && i <= w.upper && !w.exclude[i]
}

type numberSelection struct {
	withinRange
	maxCount int
}

var numbersRx = regexp.MustCompile(`\d+`)

// IsNumberSelection accepts between one and maxCount distinct integers from lower to upper (inclusive)
// A raw answer can separate the numbers with anything that isn't a digit
func IsNumberSelection(lower, upper, maxCount int, exclude ...int) Validator {
	return numberSelection{
		withinRange: withinRange{
			lower:   lower,
			upper:   upper,
			exclude: toSet(exclude),
		},
		maxCount: maxCount,
	}
}

func (n numberSelection) Cast(raw string) (interface{}, error) {
	matches := numbersRx.FindAllString(raw, -1)
	if len(matches) == 0 {
		return nil, errNoNumbers
	}

	selection := make([]int, len(matches))
	for i, match := range matches {
		v, err := strconv.Atoi(match)
		if err != nil {
			return nil, err
		}

		selection[i] = v
	}

	return selection, nil
}

func (n numberSelection) Accept(v interface{}) bool {
	selection, ok := v.([]int)
	if !ok || len(selection) == 0 || len(selection) > n.maxCount {
		return false
	}

	seen := make(map[int]bool, len(selection))
	for _, i := range selection {
		if seen[i] || !n.accepts(i) {
			return false
		}

		seen[i] = true
	}

	return true
}

func toSet(values []int) map[int]bool {
	s := make(map[int]bool, len(values))
	for _, v := range values {
		s[v] = true
	}

	return s
}
