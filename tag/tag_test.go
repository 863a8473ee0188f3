package tag

import "testing"

func TestExprTagValues(t *testing.T) {
	cases := []struct {
		tag  Expr
		want uint16
	}{
		{Nil, 0}, {Cons, 1}, {Sym, 2}, {Fun, 3}, {Num, 4}, {Thunk, 5}, {Str, 6},
	}
	for _, c := range cases {
		if uint16(c.tag) != c.want {
			t.Errorf("%s: got %d, want %d", c.tag, uint16(c.tag), c.want)
		}
	}
}

func TestContTagValues(t *testing.T) {
	cases := []struct {
		tag  Cont
		want uint16
	}{
		{Outermost, 0x1000}, {Simple, 0x1001}, {Call, 0x1002}, {Call2, 0x1003},
		{Tail, 0x1004}, {Error, 0x1005}, {Lookup, 0x1006}, {Unop, 0x1007},
		{Binop, 0x1008}, {Binop2, 0x1009}, {Relop, 0x100a}, {Relop2, 0x100b},
		{If, 0x100c}, {LetStar, 0x100d}, {LetRecStar, 0x100e}, {Dummy, 0x100f},
		{Terminal, 0x1010},
	}
	for _, c := range cases {
		if uint16(c.tag) != c.want {
			t.Errorf("%s: got %#x, want %#x", c.tag, uint16(c.tag), c.want)
		}
	}
}

func TestOpTagBlocks(t *testing.T) {
	if Car&0xf000 != 0x2000 {
		t.Errorf("Car not in Op1 block: %#x", Car)
	}
	if Sum&0xf000 != 0x3000 {
		t.Errorf("Sum not in Op2 block: %#x", Sum)
	}
	if Equal&0xf000 != 0x4000 {
		t.Errorf("Equal not in Rel2 block: %#x", Equal)
	}
}

func TestAsField(t *testing.T) {
	f := Cons.AsField()
	want := Sym.AsField()
	if f.Equal(&want) {
		t.Errorf("Cons.AsField() should differ from Sym.AsField()")
	}
}
