package store

import (
	"errors"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	in := State{CompletedSteps: []string{"connect-platform", "first-sync"}, Skipped: false}

	data, err := encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !Equal(in, out) {
		t.Fatalf("round trip: got %+v, want %+v", out, in)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	st, err := decode([]byte(`{not valid json`))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error: got %v, want ErrMalformed", err)
	}
	if !Equal(st, Default()) {
		t.Fatalf("state: got %+v, want default", st)
	}
}

func TestDecodeMissingFields(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"only skipped", `{"skipped": true}`},
		{"only completed", `{"completed_steps": ["a"]}`},
		{"wrong types", `{"completed_steps": "a", "skipped": 3}`},
		{"null fields", `{"completed_steps": null, "skipped": null}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := decode([]byte(tc.data))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("error: got %v, want ErrMalformed", err)
			}
			if !Equal(st, Default()) {
				t.Fatalf("state: got %+v, want default", st)
			}
		})
	}
}

func TestDecodeValidShape(t *testing.T) {
	st, err := decode([]byte(`{"completed_steps": [], "skipped": false}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Skipped || len(st.CompletedSteps) != 0 {
		t.Fatalf("state: got %+v, want empty unskipped", st)
	}
}

func TestEqualIsOrderInsensitive(t *testing.T) {
	a := State{CompletedSteps: []string{"x", "y"}}
	b := State{CompletedSteps: []string{"y", "x"}}
	if !Equal(a, b) {
		t.Fatal("Equal: same set in different order should be equal")
	}

	c := State{CompletedSteps: []string{"x", "y"}, Skipped: true}
	if Equal(a, c) {
		t.Fatal("Equal: differing skipped flags should not be equal")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := State{CompletedSteps: []string{"x"}}
	b := a.Clone()
	b.CompletedSteps[0] = "mutated"
	if a.CompletedSteps[0] != "x" {
		t.Fatal("Clone shared the completed slice")
	}
}
