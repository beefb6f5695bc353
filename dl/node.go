package dl

// Node is an axiom, a class expression or an entity. The set of
// implementations is closed: the types in this file.
type Node interface {
	Kind() Kind
	// Field returns the value of the named accessor: a Node, a Set or
	// a string. The boolean is false if the kind has no such field.
	Field(name string) (any, bool)
	node()
}

// Set is an unordered collection of nodes, as found in n-ary
// expressions and axioms. Its order is the order in which it was
// built; Equal and Compare ignore it.
type Set []Node

type shape int

const (
	scalarShape shape = iota
	nodeShape
	setShape
)

type fieldSpec struct {
	name  string
	shape shape
	kind  Kind
}

var fieldSpecs = map[Kind][]fieldSpec{
	ClassKind:           {{"iri", scalarShape, NoKind}},
	ObjectPropertyKind:  {{"iri", scalarShape, NoKind}},
	NamedIndividualKind: {{"iri", scalarShape, NoKind}},

	ObjectIntersectionOfKind: {{"operands", setShape, ClassExpressionKind}},
	ObjectUnionOfKind:        {{"operands", setShape, ClassExpressionKind}},
	ObjectComplementOfKind:   {{"operand", nodeShape, ClassExpressionKind}},
	ObjectSomeValuesFromKind: {
		{"property", nodeShape, ObjectPropertyKind},
		{"filler", nodeShape, ClassExpressionKind},
	},
	ObjectAllValuesFromKind: {
		{"property", nodeShape, ObjectPropertyKind},
		{"filler", nodeShape, ClassExpressionKind},
	},
	ObjectHasValueKind: {
		{"property", nodeShape, ObjectPropertyKind},
		{"individual", nodeShape, NamedIndividualKind},
	},

	SubClassOfKind: {
		{"subClass", nodeShape, ClassExpressionKind},
		{"superClass", nodeShape, ClassExpressionKind},
	},
	EquivalentClassesKind: {{"classExpressions", setShape, ClassExpressionKind}},
	DisjointClassesKind:   {{"classExpressions", setShape, ClassExpressionKind}},
	SubObjectPropertyOfKind: {
		{"subProperty", nodeShape, ObjectPropertyKind},
		{"superProperty", nodeShape, ObjectPropertyKind},
	},
	ObjectPropertyDomainKind: {
		{"property", nodeShape, ObjectPropertyKind},
		{"domain", nodeShape, ClassExpressionKind},
	},
	ObjectPropertyRangeKind: {
		{"property", nodeShape, ObjectPropertyKind},
		{"range", nodeShape, ClassExpressionKind},
	},
	ClassAssertionKind: {
		{"class", nodeShape, ClassExpressionKind},
		{"individual", nodeShape, NamedIndividualKind},
	},
	ObjectPropertyAssertionKind: {
		{"property", nodeShape, ObjectPropertyKind},
		{"subject", nodeShape, NamedIndividualKind},
		{"object", nodeShape, NamedIndividualKind},
	},
}

// FieldNames returns the accessor names of kind k in declaration order.
func FieldNames(k Kind) []string {
	specs := fieldSpecs[k]
	res := make([]string, len(specs))
	for i := range specs {
		res[i] = specs[i].name
	}
	return res
}

// lookupField finds the named field of kind k. For NoKind and the
// abstract kinds it takes the first concrete kind having the field;
// field names mean the same thing in every kind that has them.
func lookupField(k Kind, name string) (fieldSpec, bool) {
	kinds := []Kind{k}
	if k == NoKind || k.IsAbstract() {
		kinds = Kinds()
	}
	for _, kk := range kinds {
		if !kk.Is(k) {
			continue
		}
		for _, spec := range fieldSpecs[kk] {
			if spec.name == name {
				return spec, true
			}
		}
	}
	return fieldSpec{}, false
}

// IsSetField reports whether the named field of kind k is a Set.
func IsSetField(k Kind, name string) bool {
	spec, ok := lookupField(k, name)
	return ok && spec.shape == setShape
}

// IsScalarField reports whether the named field of kind k is a string.
func IsScalarField(k Kind, name string) bool {
	spec, ok := lookupField(k, name)
	return ok && spec.shape == scalarShape
}

// FieldKind returns the kind constraint on the members of the named
// field of kind k, or NoKind if there is none.
func FieldKind(k Kind, name string) Kind {
	spec, _ := lookupField(k, name)
	return spec.kind
}

// Entity is a named class, object property or individual.
type Entity struct {
	K   Kind
	IRI string
}

func (e *Entity) Kind() Kind { return e.K }
func (e *Entity) node()      {}

func (e *Entity) Field(name string) (any, bool) {
	if name == "iri" {
		return e.IRI, true
	}
	return nil, false
}

func NewClass(iri string) *Entity {
	return &Entity{K: ClassKind, IRI: iri}
}

func NewObjectProperty(iri string) *Entity {
	return &Entity{K: ObjectPropertyKind, IRI: iri}
}

func NewIndividual(iri string) *Entity {
	return &Entity{K: NamedIndividualKind, IRI: iri}
}

// Junction is ObjectIntersectionOf or ObjectUnionOf.
type Junction struct {
	K        Kind
	Operands Set
}

func (j *Junction) Kind() Kind { return j.K }
func (j *Junction) node()      {}

func (j *Junction) Field(name string) (any, bool) {
	if name == "operands" {
		return j.Operands, true
	}
	return nil, false
}

func NewIntersection(ops ...Node) *Junction {
	return &Junction{K: ObjectIntersectionOfKind, Operands: ops}
}

func NewUnion(ops ...Node) *Junction {
	return &Junction{K: ObjectUnionOfKind, Operands: ops}
}

type Complement struct {
	Operand Node
}

func (c *Complement) Kind() Kind { return ObjectComplementOfKind }
func (c *Complement) node()      {}

func (c *Complement) Field(name string) (any, bool) {
	if name == "operand" {
		return c.Operand, true
	}
	return nil, false
}

func NewComplement(n Node) *Complement {
	return &Complement{Operand: n}
}

// Restriction is ObjectSomeValuesFrom or ObjectAllValuesFrom.
type Restriction struct {
	K        Kind
	Property Node
	Filler   Node
}

func (r *Restriction) Kind() Kind { return r.K }
func (r *Restriction) node()      {}

func (r *Restriction) Field(name string) (any, bool) {
	switch name {
	case "property":
		return r.Property, true
	case "filler":
		return r.Filler, true
	}
	return nil, false
}

func NewSome(p, filler Node) *Restriction {
	return &Restriction{K: ObjectSomeValuesFromKind, Property: p, Filler: filler}
}

func NewAll(p, filler Node) *Restriction {
	return &Restriction{K: ObjectAllValuesFromKind, Property: p, Filler: filler}
}

type HasValue struct {
	Property   Node
	Individual Node
}

func (h *HasValue) Kind() Kind { return ObjectHasValueKind }
func (h *HasValue) node()      {}

func (h *HasValue) Field(name string) (any, bool) {
	switch name {
	case "property":
		return h.Property, true
	case "individual":
		return h.Individual, true
	}
	return nil, false
}

func NewHasValue(p, ind Node) *HasValue {
	return &HasValue{Property: p, Individual: ind}
}

type SubClassOf struct {
	SubClass   Node
	SuperClass Node
}

func (s *SubClassOf) Kind() Kind { return SubClassOfKind }
func (s *SubClassOf) node()      {}

func (s *SubClassOf) Field(name string) (any, bool) {
	switch name {
	case "subClass":
		return s.SubClass, true
	case "superClass":
		return s.SuperClass, true
	}
	return nil, false
}

func NewSubClassOf(sub, super Node) *SubClassOf {
	return &SubClassOf{SubClass: sub, SuperClass: super}
}

// ClassSet is EquivalentClasses or DisjointClasses.
type ClassSet struct {
	K       Kind
	Classes Set
}

func (c *ClassSet) Kind() Kind { return c.K }
func (c *ClassSet) node()      {}

func (c *ClassSet) Field(name string) (any, bool) {
	if name == "classExpressions" {
		return c.Classes, true
	}
	return nil, false
}

func NewEquivalent(ces ...Node) *ClassSet {
	return &ClassSet{K: EquivalentClassesKind, Classes: ces}
}

func NewDisjoint(ces ...Node) *ClassSet {
	return &ClassSet{K: DisjointClassesKind, Classes: ces}
}

type SubPropertyOf struct {
	SubProperty   Node
	SuperProperty Node
}

func (s *SubPropertyOf) Kind() Kind { return SubObjectPropertyOfKind }
func (s *SubPropertyOf) node()      {}

func (s *SubPropertyOf) Field(name string) (any, bool) {
	switch name {
	case "subProperty":
		return s.SubProperty, true
	case "superProperty":
		return s.SuperProperty, true
	}
	return nil, false
}

func NewSubPropertyOf(sub, super Node) *SubPropertyOf {
	return &SubPropertyOf{SubProperty: sub, SuperProperty: super}
}

// PropertyClass is ObjectPropertyDomain or ObjectPropertyRange. The
// class is exposed as "domain" or "range" according to the kind.
type PropertyClass struct {
	K        Kind
	Property Node
	Class    Node
}

func (p *PropertyClass) Kind() Kind { return p.K }
func (p *PropertyClass) node()      {}

func (p *PropertyClass) Field(name string) (any, bool) {
	switch {
	case name == "property":
		return p.Property, true
	case name == "domain" && p.K == ObjectPropertyDomainKind:
		return p.Class, true
	case name == "range" && p.K == ObjectPropertyRangeKind:
		return p.Class, true
	}
	return nil, false
}

func NewDomain(p, c Node) *PropertyClass {
	return &PropertyClass{K: ObjectPropertyDomainKind, Property: p, Class: c}
}

func NewRange(p, c Node) *PropertyClass {
	return &PropertyClass{K: ObjectPropertyRangeKind, Property: p, Class: c}
}

type ClassAssertion struct {
	Class      Node
	Individual Node
}

func (c *ClassAssertion) Kind() Kind { return ClassAssertionKind }
func (c *ClassAssertion) node()      {}

func (c *ClassAssertion) Field(name string) (any, bool) {
	switch name {
	case "class":
		return c.Class, true
	case "individual":
		return c.Individual, true
	}
	return nil, false
}

func NewClassAssertion(c, ind Node) *ClassAssertion {
	return &ClassAssertion{Class: c, Individual: ind}
}

type PropertyAssertion struct {
	Property Node
	Subject  Node
	Object   Node
}

func (p *PropertyAssertion) Kind() Kind { return ObjectPropertyAssertionKind }
func (p *PropertyAssertion) node()      {}

func (p *PropertyAssertion) Field(name string) (any, bool) {
	switch name {
	case "property":
		return p.Property, true
	case "subject":
		return p.Subject, true
	case "object":
		return p.Object, true
	}
	return nil, false
}

func NewPropertyAssertion(p, subj, obj Node) *PropertyAssertion {
	return &PropertyAssertion{Property: p, Subject: subj, Object: obj}
}
