package dl

import "fmt"

// Kind is the runtime type tag of a node. The abstract kinds
// EntityKind, ClassExpressionKind and AxiomKind are never carried by a
// node; they exist for type constraints.
type Kind int

const (
	NoKind Kind = iota

	EntityKind
	ClassExpressionKind
	AxiomKind

	ClassKind
	ObjectPropertyKind
	NamedIndividualKind

	ObjectIntersectionOfKind
	ObjectUnionOfKind
	ObjectComplementOfKind
	ObjectSomeValuesFromKind
	ObjectAllValuesFromKind
	ObjectHasValueKind

	SubClassOfKind
	EquivalentClassesKind
	DisjointClassesKind
	SubObjectPropertyOfKind
	ObjectPropertyDomainKind
	ObjectPropertyRangeKind
	ClassAssertionKind
	ObjectPropertyAssertionKind
)

var kindNames = map[Kind]string{
	EntityKind:                  "Entity",
	ClassExpressionKind:         "ClassExpression",
	AxiomKind:                   "Axiom",
	ClassKind:                   "Class",
	ObjectPropertyKind:          "ObjectProperty",
	NamedIndividualKind:         "NamedIndividual",
	ObjectIntersectionOfKind:    "ObjectIntersectionOf",
	ObjectUnionOfKind:           "ObjectUnionOf",
	ObjectComplementOfKind:      "ObjectComplementOf",
	ObjectSomeValuesFromKind:    "ObjectSomeValuesFrom",
	ObjectAllValuesFromKind:     "ObjectAllValuesFrom",
	ObjectHasValueKind:          "ObjectHasValue",
	SubClassOfKind:              "SubClassOf",
	EquivalentClassesKind:       "EquivalentClasses",
	DisjointClassesKind:         "DisjointClasses",
	SubObjectPropertyOfKind:     "SubObjectPropertyOf",
	ObjectPropertyDomainKind:    "ObjectPropertyDomain",
	ObjectPropertyRangeKind:     "ObjectPropertyRange",
	ClassAssertionKind:          "ClassAssertion",
	ObjectPropertyAssertionKind: "ObjectPropertyAssertion",
}

var namedKinds = func() map[string]Kind {
	res := make(map[string]Kind, len(kindNames))
	for k, s := range kindNames {
		res[s] = k
	}
	return res
}()

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind returns the kind named s.
func ParseKind(s string) (Kind, error) {
	k, ok := namedKinds[s]
	if !ok {
		return NoKind, fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Kinds returns the concrete kinds, those which nodes carry.
func Kinds() []Kind {
	res := make([]Kind, 0, ObjectPropertyAssertionKind-ClassKind+1)
	for k := ClassKind; k <= ObjectPropertyAssertionKind; k++ {
		res = append(res, k)
	}
	return res
}

func (k Kind) IsAbstract() bool {
	switch k {
	case EntityKind, ClassExpressionKind, AxiomKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsEntity() bool {
	switch k {
	case ClassKind, ObjectPropertyKind, NamedIndividualKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsClassExpression() bool {
	return k == ClassKind || (k >= ObjectIntersectionOfKind && k <= ObjectHasValueKind)
}

func (k Kind) IsAxiom() bool {
	return k >= SubClassOfKind && k <= ObjectPropertyAssertionKind
}

// Is reports whether a node of kind k satisfies the constraint c. A
// concrete constraint is satisfied only by itself, an abstract one by
// every kind in its group.
func (k Kind) Is(c Kind) bool {
	switch c {
	case NoKind:
		return true
	case EntityKind:
		return k.IsEntity()
	case ClassExpressionKind:
		return k.IsClassExpression()
	case AxiomKind:
		return k.IsAxiom()
	default:
		return k == c
	}
}
