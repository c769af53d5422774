package sqlbuilder

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// FilterError reports an unusable filter request: an unrecognized key, a
// malformed value, or an inverted numeric range.
type FilterError struct {
	Key    string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter %q: %s", e.Key, e.Reason)
}

// Param is one key/value pair from a query string, in encounter order.
type Param struct {
	Key   string
	Value string
}

// ParseQuery splits a raw query string into ordered params.
//
// net/url parses into an unordered map; predicates must follow the order the
// keys were supplied, so the raw string is walked directly.
func ParseQuery(rawQuery string) ([]Param, error) {
	if rawQuery == "" {
		return nil, nil
	}

	var params []Param
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		params = append(params, Param{Key: key, Value: value})
	}
	return params, nil
}

// predicateKind enumerates the predicate shapes a filter key can render to.
type predicateKind int

const (
	lowerBound predicateKind = iota // column >= $n, integer value
	upperBound                      // column <= $n, integer value
	substring                       // column ILIKE $n, value wrapped in %
	flag                            // fixed predicate chosen by a boolean, no parameter
)

// rule describes how one recognized filter key renders.
type rule struct {
	kind      predicateKind
	column    string
	whenTrue  string // flag kind only
	whenFalse string
}

// rangePair names a lower/upper key pair that must satisfy low <= high.
type rangePair struct {
	low, high string
}

// FilterSet is the recognized filter vocabulary for one entity.
type FilterSet struct {
	rules  map[string]rule
	ranges []rangePair
}

// CompanyFilters recognizes minEmployees, maxEmployees and name.
var CompanyFilters = FilterSet{
	rules: map[string]rule{
		"minEmployees": {kind: lowerBound, column: "num_employees"},
		"maxEmployees": {kind: upperBound, column: "num_employees"},
		"name":         {kind: substring, column: "name"},
	},
	ranges: []rangePair{{low: "minEmployees", high: "maxEmployees"}},
}

// JobFilters recognizes title, minSalary and hasEquity.
var JobFilters = FilterSet{
	rules: map[string]rule{
		"title":     {kind: substring, column: "title"},
		"minSalary": {kind: lowerBound, column: "salary"},
		"hasEquity": {kind: flag, whenTrue: "equity > 0", whenFalse: "equity = 0"},
	},
}

// Where renders a WHERE clause for the supplied params.
//
// An empty clause with no values means no filtering was requested and the
// caller should run its unfiltered listing. Every key must be recognized,
// and range pairs are checked before any predicate is built. Placeholders
// are numbered in encounter order, counting only parameterized predicates.
func (fs FilterSet) Where(params []Param) (string, []any, error) {
	if len(params) == 0 {
		return "", nil, nil
	}

	if err := fs.checkRanges(params); err != nil {
		return "", nil, err
	}

	predicates := make([]string, 0, len(params))
	var values []any
	for _, p := range params {
		r, ok := fs.rules[p.Key]
		if !ok {
			return "", nil, &FilterError{Key: p.Key, Reason: "unrecognized filter"}
		}

		switch r.kind {
		case lowerBound, upperBound:
			n, err := strconv.Atoi(p.Value)
			if err != nil {
				return "", nil, &FilterError{Key: p.Key, Reason: "expected an integer"}
			}
			op := ">="
			if r.kind == upperBound {
				op = "<="
			}
			values = append(values, n)
			predicates = append(predicates, fmt.Sprintf("%s %s $%d", r.column, op, len(values)))
		case substring:
			values = append(values, "%"+p.Value+"%")
			predicates = append(predicates, fmt.Sprintf("%s ILIKE $%d", r.column, len(values)))
		case flag:
			b, err := strconv.ParseBool(p.Value)
			if err != nil {
				return "", nil, &FilterError{Key: p.Key, Reason: "expected true or false"}
			}
			if b {
				predicates = append(predicates, r.whenTrue)
			} else {
				predicates = append(predicates, r.whenFalse)
			}
		}
	}

	return "WHERE " + strings.Join(predicates, " AND "), values, nil
}

// checkRanges rejects inverted min/max pairs. Malformed numbers are left to
// the build loop so the error names the individual key.
func (fs FilterSet) checkRanges(params []Param) error {
	for _, rp := range fs.ranges {
		low, lowOK := lookup(params, rp.low)
		high, highOK := lookup(params, rp.high)
		if !lowOK || !highOK {
			continue
		}
		lowN, lowErr := strconv.Atoi(low)
		highN, highErr := strconv.Atoi(high)
		if lowErr != nil || highErr != nil {
			continue
		}
		if lowN > highN {
			return &FilterError{Key: rp.low, Reason: fmt.Sprintf("cannot exceed %s", rp.high)}
		}
	}
	return nil
}

func lookup(params []Param, key string) (string, bool) {
	for _, p := range params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
