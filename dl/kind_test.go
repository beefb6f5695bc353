package dl

import "testing"

func TestKindIs(t *testing.T) {
	tests := []struct {
		k, c Kind
		want bool
	}{
		{ClassKind, ClassKind, true},
		{ClassKind, EntityKind, true},
		{ClassKind, ClassExpressionKind, true},
		{ClassKind, AxiomKind, false},
		{ObjectPropertyKind, ClassExpressionKind, false},
		{ObjectHasValueKind, ClassExpressionKind, true},
		{SubClassOfKind, AxiomKind, true},
		{SubClassOfKind, EquivalentClassesKind, false},
		{ObjectPropertyAssertionKind, AxiomKind, true},
		{SubClassOfKind, NoKind, true},
	}
	for _, tt := range tests {
		if got := tt.k.Is(tt.c); got != tt.want {
			t.Errorf("%s.Is(%s) = %v, want %v", tt.k, tt.c, got, tt.want)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, k := range append(Kinds(), EntityKind, ClassExpressionKind, AxiomKind) {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var kk Kind
		if err := kk.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if kk != k {
			t.Errorf("%s came back as %s", k, kk)
		}
	}
	if _, err := ParseKind("Thing"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
