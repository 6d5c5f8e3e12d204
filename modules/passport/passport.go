package passport

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vk/advent2020/internal/fsutil"
	"github.com/vk/advent2020/internal/parse"
)

// Parse failures specific to passport fields. Both are wrapped in a
// *parse.Error carrying the line number.
var (
	ErrUnknownField = errors.New("unknown field")
	ErrMissingValue = errors.New("field without ':' separator")
)

// Unit is the unit tag of a height.
type Unit int

const (
	// UnitUnknown marks a height whose unit is missing or unrecognized.
	UnitUnknown Unit = iota
	UnitCentimeters
	UnitInches
)

// Height is a measured value with its unit. Raw keeps the original text.
type Height struct {
	Value int
	Unit  Unit
	Raw   string
}

// Passport holds the fields of one record. A nil field was not present.
type Passport struct {
	BirthYear      *int
	IssueYear      *int
	ExpirationYear *int
	Height         *Height
	HairColor      *string
	EyeColor       *string
	PassportID     *string
	CountryID      *string
}

// ParsePassports parses blank-line separated records of space separated
// key:value tokens.
func ParsePassports(text string) ([]Passport, error) {
	blocks := fsutil.SplitBlocks(text)
	passports := make([]Passport, 0, len(blocks))
	for _, block := range blocks {
		var p Passport
		for i, line := range block.Lines {
			for _, token := range strings.Fields(line) {
				if err := p.set(block.Line+i, token); err != nil {
					return nil, err
				}
			}
		}
		passports = append(passports, p)
	}
	return passports, nil
}

// set applies one key:value token. A repeated key overwrites the earlier value.
func (p *Passport) set(lineNo int, token string) error {
	key, value, ok := strings.Cut(token, ":")
	if !ok {
		return parse.Wrap(lineNo, ErrMissingValue, "token %q", token)
	}

	switch key {
	case "byr":
		return setYear(&p.BirthYear, lineNo, key, value)
	case "iyr":
		return setYear(&p.IssueYear, lineNo, key, value)
	case "eyr":
		return setYear(&p.ExpirationYear, lineNo, key, value)
	case "hgt":
		h := parseHeight(value)
		p.Height = &h
	case "hcl":
		p.HairColor = &value
	case "ecl":
		p.EyeColor = &value
	case "pid":
		p.PassportID = &value
	case "cid":
		p.CountryID = &value
	default:
		return parse.Wrap(lineNo, ErrUnknownField, "key %q", key)
	}
	return nil
}

func setYear(dst **int, lineNo int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return parse.Wrap(lineNo, err, "field %s has non-numeric year %q", key, value)
	}
	*dst = &n
	return nil
}

func parseHeight(value string) Height {
	h := Height{Raw: value}
	var number string
	switch {
	case strings.HasSuffix(value, "cm"):
		h.Unit, number = UnitCentimeters, strings.TrimSuffix(value, "cm")
	case strings.HasSuffix(value, "in"):
		h.Unit, number = UnitInches, strings.TrimSuffix(value, "in")
	default:
		return h
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return Height{Raw: value}
	}
	h.Value = n
	return h
}
