package x509name

/*
constr.go contains constraint and constraint group components which
serve to validate the syntax of names, keywords, object identifiers
and subtree distances throughout this package.
*/

import (
	"golang.org/x/exp/constraints"
)

/*
Lengthy is qualified through any type which bears the "Len() int" method.
*/
type Lengthy interface {
	Len() int
}

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
AncestralConstraint implements a generic closure function signature meant
to determine whether ancestor and descendent are ancestrally linked.
*/
type AncestralConstraint[T any] func(ancestor, descendant []T) bool

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
PropertyConstraint returns a [Constraint] that applies a user-defined check
function. That function should return nil if the property is satisfied or an
error otherwise.
*/
func PropertyConstraint[T any](check func(T) error) Constraint[T] {
	return func(val T) error {
		return check(val)
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
SizeConstraint returns an instance of [Constraint] that checks if a value's
logical length falls within the inclusive bounds min and max.
*/
func SizeConstraint[T Lengthy](min, max int) Constraint[T] {
	return func(val T) (err error) {
		if size := val.Len(); size < min || size > max {
			err = constraintViolationf("size ", size, " is out of bounds [",
				min, ", ", max, "]")
		}
		return
	}
}

/*
StringLength returns a [Constraint] which checks the byte length of a
string against the inclusive bounds min and max.
*/
func StringLength(min, max int) Constraint[string] {
	return LiftConstraint(func(s string) int { return len(s) },
		Constraint[int](func(n int) (err error) {
			if err = RangeConstraint(min, max)(n); err != nil {
				err = constraintViolationf("length ", n, " is out of bounds [",
					min, ", ", max, "]")
			}
			return
		}))
}

/*
Ancestor returns an instance of [AncestralConstraint] that checks if two
slice types are ancestrally linked using the equality function eq.
*/
func Ancestor[T any](eq func(a, b T) bool) AncestralConstraint[T] {
	return func(ancestor, descendant []T) bool {
		// If the candidate ancestor is longer than the descendant,
		// it cannot be a prefix.
		if len(ancestor) > len(descendant) {
			return false
		}
		for i := 0; i < len(ancestor); i++ {
			if !eq(ancestor[i], descendant[i]) {
				return false
			}
		}
		return true
	}
}

/*
From returns an instance of [Constraint] that checks if a string value contains
illegal bytes (characters).
*/
func From(allowed string) Constraint[string] {
	var allowedSet [256]bool
	for i := 0; i < len(allowed); i++ {
		allowedSet[allowed[i]] = true
	}
	return func(s string) (err error) {
		for i := 0; i < len(s) && err == nil; i++ {
			if !allowedSet[s[i]] {
				err = constraintViolationf("character ", string(s[i]), " at position ",
					i, " is not allowed")
			}
		}
		return
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = constraintViolationf("union failed all ", len(constraints), " constraints")
		}
		return
	}
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}

const (
	digits  = `0123456789`
	letters = `ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz`
)

/*
package-level constraint groups.
*/
var (
	// dotted-decimal object identifiers
	oidSyntaxConstraints = ConstraintGroup[string]{
		StringLength(3, 1<<10),
		From(digits + `.`),
		PropertyConstraint(func(dot string) (err error) {
			for _, arc := range split(dot, `.`) {
				if len(arc) == 0 {
					err = primitiveErrorf("OBJECT IDENTIFIER: empty arc in ", dot)
				} else if len(arc) > 1 && arc[0] == '0' {
					err = primitiveErrorf("OBJECT IDENTIFIER: leading zero in arc ", arc)
				}
				if err != nil {
					break
				}
			}
			return
		}),
	}

	// user-supplied attribute keywords
	keywordConstraints = ConstraintGroup[string]{
		StringLength(1, 1<<8),
		From(letters + digits + `_`),
		PropertyConstraint(func(kw string) (err error) {
			if !isAlpha(kw[0]) {
				err = nameErrorf("keyword ", kw, " must begin with a letter")
			}
			return
		}),
	}

	// individual DNS labels
	dnsLabelConstraints = ConstraintGroup[string]{
		StringLength(1, 63),
		From(letters + digits + `-`),
		PropertyConstraint(func(label string) (err error) {
			if !isAlnum(label[0]) {
				err = nameErrorf("DNS label ", label, " must begin with a letter or digit")
			} else if label[len(label)-1] == '-' {
				err = nameErrorf("DNS label ", label, " must not end with a hyphen")
			}
			return
		}),
	}

	// complete DNS names, less any leading period
	dnsNameConstraints = ConstraintGroup[string]{
		Intersection(StringLength(1, 253), From(letters+digits+`-.`)),
	}

	// IP address octet counts: 4 or 16 (hosts), 8 or 32 (subnets)
	ipLengthConstraints = ConstraintGroup[int]{
		Union(RangeConstraint(4, 4), RangeConstraint(8, 8),
			RangeConstraint(16, 16), RangeConstraint(32, 32)),
	}

	// AVAs of a constructed RDN
	rdnSizeConstraints = ConstraintGroup[*RDN]{
		SizeConstraint[*RDN](1, 1<<10),
	}

	// GeneralSubtree base distances
	distanceConstraints = ConstraintGroup[int64]{
		RangeConstraint[int64](0, 1<<31-1),
	}
)
