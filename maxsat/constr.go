package maxsat

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidConstr is returned when a constraint is malformed.
var ErrInvalidConstr = errors.New("invalid constraint")

// A Lit is a potentially-negated boolean variable, designated by its name.
type Lit struct {
	Var     string
	Negated bool
}

// Var returns the positive literal of the variable named name.
func Var(name string) Lit {
	return Lit{Var: name}
}

// Not returns the negative literal of the variable named name.
func Not(name string) Lit {
	return Lit{Var: name, Negated: true}
}

// Negation returns the logical negation of l.
func (l Lit) Negation() Lit {
	return Lit{Var: l.Var, Negated: !l.Negated}
}

func (l Lit) String() string {
	if l.Negated {
		return "¬" + l.Var
	}
	return l.Var
}

// A Constr is a pseudo-boolean constraint sum(Coeffs[i]*Lits[i]) >= AtLeast,
// hard when its weight is 0, soft otherwise.
type Constr struct {
	Lits    []Lit
	Coeffs  []int // Nil means all coefficients are 1.
	AtLeast int
	Weight  int // Cost of violating the constraint, 0 for a hard one.
}

// HardClause returns a clause that must be satisfied.
func HardClause(lits ...Lit) Constr {
	return Constr{Lits: lits, AtLeast: 1}
}

// SoftClause returns a clause of weight 1.
func SoftClause(lits ...Lit) Constr {
	return WeightedClause(lits, 1)
}

// WeightedClause returns a clause whose violation costs weight.
func WeightedClause(lits []Lit, weight int) Constr {
	return Constr{Lits: lits, AtLeast: 1, Weight: weight}
}

// HardPBConstr returns a pseudo-boolean constraint that must be satisfied.
func HardPBConstr(lits []Lit, coeffs []int, atLeast int) Constr {
	return WeightedPBConstr(lits, coeffs, atLeast, 0)
}

// SoftPBConstr returns a pseudo-boolean constraint of weight 1.
func SoftPBConstr(lits []Lit, coeffs []int, atLeast int) Constr {
	return WeightedPBConstr(lits, coeffs, atLeast, 1)
}

// WeightedPBConstr returns a pseudo-boolean constraint whose violation costs weight.
func WeightedPBConstr(lits []Lit, coeffs []int, atLeast int, weight int) Constr {
	return Constr{Lits: lits, Coeffs: coeffs, AtLeast: atLeast, Weight: weight}
}

// Soft is true iff c may be violated.
func (c Constr) Soft() bool {
	return c.Weight != 0
}

func (c Constr) coeff(i int) int {
	if i >= len(c.Coeffs) {
		return 1
	}
	return c.Coeffs[i]
}

func (c Constr) validate() error {
	if c.Coeffs != nil && len(c.Coeffs) != len(c.Lits) {
		return errors.Wrapf(ErrInvalidConstr, "%s: %d coefficients for %d literals", c, len(c.Coeffs), len(c.Lits))
	}
	if c.Weight < 0 {
		return errors.Wrapf(ErrInvalidConstr, "%s: negative weight %d", c, c.Weight)
	}
	for _, l := range c.Lits {
		if l.Var == "" {
			return errors.Wrapf(ErrInvalidConstr, "%s: unnamed variable", c)
		}
	}
	return nil
}

func (c Constr) String() string {
	strs := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		if k := c.coeff(i); k != 1 {
			strs[i] = fmt.Sprintf("%d %s", k, l)
		} else {
			strs[i] = l.String()
		}
	}
	res := fmt.Sprintf("%s >= %d", strings.Join(strs, " + "), c.AtLeast)
	if c.Soft() {
		res = fmt.Sprintf("[%d] %s", c.Weight, res)
	}
	return res
}
