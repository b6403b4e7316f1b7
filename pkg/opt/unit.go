package opt

// Unit is the zero-size "no payload" marker. It gives the combinator algebra
// a uniform value for functions that produce nothing, so a map over a
// side-effecting function still yields a well-formed Option[Unit].
type Unit struct{}

// ToUnit swallows any values and yields Unit.
func ToUnit(_ ...any) Unit {
	return Unit{}
}
