package sat

// Literal is a Boolean variable (0-indexed) plus its polarity in a clause.
type Literal struct {
	Var     int
	Negated bool
}

// Clause is a disjunction of exactly three literals.
type Clause [3]Literal

// Formula is a 3-CNF instance over NumVars Boolean variables.
type Formula struct {
	NumVars int
	Clauses []Clause
}
