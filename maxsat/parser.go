package maxsat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseWCNF parses a weighted partial MAXSAT problem in the WCNF format.
// Clauses whose weight is at least the top weight of the header are hard;
// so are clauses whose weight is "h", as in the format of recent evaluations,
// which has no header. Variable n is named after its index, "n".
func ParseWCNF(r io.Reader) ([]Constr, error) {
	scanner := bufio.NewScanner(r)
	var (
		res       []Constr
		nbVars    int
		topWeight int // 0 when there is no top weight
		header    bool
	)
	for lineNb := 1; scanner.Scan(); lineNb++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || line[0] == 'c':
			continue
		case line[0] == 'p':
			fields := strings.Fields(line)
			if header || len(fields) < 4 || fields[1] != "wcnf" {
				return nil, errors.Errorf("line %d: invalid header %q", lineNb, line)
			}
			var err error
			if nbVars, err = strconv.Atoi(fields[2]); err != nil {
				return nil, errors.Errorf("line %d: nbvars not an int: %q", lineNb, fields[2])
			}
			if _, err = strconv.Atoi(fields[3]); err != nil {
				return nil, errors.Errorf("line %d: nbclauses not an int: %q", lineNb, fields[3])
			}
			if len(fields) == 5 {
				if topWeight, err = strconv.Atoi(fields[4]); err != nil {
					return nil, errors.Errorf("line %d: top weight not an int: %q", lineNb, fields[4])
				}
			}
			header = true
		default:
			c, err := parseWCNFClause(line, topWeight, nbVars)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNb)
			}
			res = append(res, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read WCNF problem")
	}
	return res, nil
}

// parseWCNFClause parses a weight followed by a clause terminated by 0.
// nbVars is 0 when there is no header.
func parseWCNFClause(line string, topWeight, nbVars int) (Constr, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[len(fields)-1] != "0" {
		return Constr{}, errors.Errorf("clause %q is not terminated by 0", line)
	}
	var weight int
	if fields[0] != "h" {
		var err error
		if weight, err = strconv.Atoi(fields[0]); err != nil || weight <= 0 {
			return Constr{}, errors.Errorf("invalid weight %q in clause %q", fields[0], line)
		}
		if topWeight != 0 && weight >= topWeight {
			weight = 0
		}
	}
	lits := make([]Lit, 0, len(fields)-2)
	for _, field := range fields[1 : len(fields)-1] {
		val, err := strconv.Atoi(field)
		if err != nil || val == 0 {
			return Constr{}, errors.Errorf("invalid literal %q in clause %q", field, line)
		}
		v := val
		if v < 0 {
			v = -v
		}
		if nbVars != 0 && v > nbVars {
			return Constr{}, errors.Errorf("literal %d out of range in clause %q", val, line)
		}
		lits = append(lits, Lit{Var: strconv.Itoa(v), Negated: val < 0})
	}
	return WeightedClause(lits, weight), nil
}
