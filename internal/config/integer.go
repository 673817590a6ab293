package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntegerLimit is PARSE_INTEGER_LIMIT from spec §4.E.
const ParseIntegerLimit = 1_000_000

// boolConstants resolves the boolean spellings of the integer grammar.
var boolConstants = map[string]uint32{
	"on": 1, "true": 1, "yes": 1,
	"off": 0, "false": 0, "no": 0,
}

// modifierConstants resolves the modifier spellings of the integer
// grammar to their bit values (config.Mod* constants).
var modifierConstants = map[string]uint32{
	"None":    0,
	"Shift":   ModShift,
	"Lock":    ModLock,
	"Control": ModControl,
	"Mod1":    ModMod1,
	"Mod2":    ModMod2,
	"Mod3":    ModMod3,
	"Mod4":    ModMod4,
	"Mod5":    ModMod5,
	"Super":   ModMod4,
}

// ParsedInteger is the result of parsing one "+"-joined integer expression
// (spec §4.E "Integer expressions"): the accumulated numeric value and
// whether any summand carried a trailing "%".
type ParsedInteger struct {
	value   int64
	percent bool
}

// parseIntegerTerm parses a single DIGITS%? | '#'HEXDIGITS | constant term.
// The percent flag is sticky through "+" (spec: "The percent flag is sticky
// through +"), which parseIntegerChain implements by OR-ing each term's flag
// into the running result.
func parseIntegerTerm(word string) (ParsedInteger, error) {
	if v, ok := boolConstants[word]; ok {
		return ParsedInteger{value: int64(v)}, nil
	}
	if v, ok := modifierConstants[word]; ok {
		return ParsedInteger{value: int64(v)}, nil
	}
	if strings.HasPrefix(word, "#") {
		hex := word[1:]
		if len(hex) < 1 || len(hex) > 8 {
			return ParsedInteger{}, fmt.Errorf("invalid hex literal %q", word)
		}
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return ParsedInteger{}, fmt.Errorf("invalid hex literal %q", word)
		}
		return ParsedInteger{value: int64(v)}, nil
	}

	percent := strings.HasSuffix(word, "%")
	digits := word
	if percent {
		digits = word[:len(word)-1]
	}
	if digits == "" {
		return ParsedInteger{}, fmt.Errorf("empty integer literal")
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ParsedInteger{}, fmt.Errorf("invalid integer literal %q", word)
	}
	return ParsedInteger{value: v, percent: percent}, nil
}

// parseIntegerChain parses a full "+"-joined integer expression and applies
// the PARSE_INTEGER_LIMIT ceiling, clamping and reporting an overflow error
// without aborting parsing (spec §4.E "Integer ceiling").
func parseIntegerChain(words []string) (ParsedInteger, error) {
	var total ParsedInteger
	for i, w := range words {
		term, err := parseIntegerTerm(w)
		if err != nil {
			return ParsedInteger{}, err
		}
		total.value += term.value
		total.percent = total.percent || term.percent
		_ = i
	}
	var clampErr error
	if total.value > ParseIntegerLimit {
		clampErr = fmt.Errorf("integer %d overflows PARSE_INTEGER_LIMIT (%d)", total.value, ParseIntegerLimit)
		total.value = ParseIntegerLimit
	}
	return total, clampErr
}

// ResolvePercent applies a percent-flagged integer against a reference
// span (spec §4.E action interpretation: "Percent integers are translated
// against the containing monitor's width/height on the respective axis").
func (p ParsedInteger) ResolvePercent(span int32) int32 {
	if !p.percent {
		return int32(p.value)
	}
	return int32(int64(span) * p.value / 100)
}
