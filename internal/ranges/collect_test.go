package ranges

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/dylan-marx/rangesum/internal/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCollect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"single number", "1", []int{1}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"two numbers", "1,3", []int{1, 3}},
		{"non-numeric dropped", "1,3,a", []int{1, 3}},
		{"empties and invalid dropped", " , 5, a, 10,, ,3", []int{3, 5, 10}},
		{"duplicates collapsed", "1,2,2,3,3,3,4", []int{1, 2, 3, 4}},
		{"leading and trailing delimiters", ",5,", []int{5}},
		{"double delimiter", "1,,2", []int{1, 2}},
		{"negative numbers", "-1, -3, 2", []int{-3, -1, 2}},
		{"explicit plus sign", "+7", []int{7}},
		{"inner whitespace is malformed", "1 2, 3", []int{3}},
		{"decimal is malformed", "1.5,2", []int{2}},
		{"overflow is malformed", "99999999999999999999999,4", []int{4}},
		{"only delimiters", ",,,", nil},
		{"tabs and newlines trimmed", "\t4\n,\n5 ", []int{4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(tt.input).Values()
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Collect(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestCollect_SampleSize(t *testing.T) {
	if got := Collect("1,3,6,7,8,12,13,14,15,21,22,23,24,31").Len(); got != 14 {
		t.Errorf("expected 14 values, got %d", got)
	}
	if got := Collect("1,3,6,7,8,12,13,14,a,21,22,23,24,31").Len(); got != 13 {
		t.Errorf("expected 13 values, got %d", got)
	}
}

// Values outside 32 bits are kept: parsing uses the native int, not int32.
func TestCollect_NativeIntWidth(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int is narrower than 64 bits on this platform")
	}

	got := Collect("2147483648, -2147483649, 1").Values()
	big := int64(1) << 31
	want := []int{int(-big - 1), 1, int(big)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectPtr(t *testing.T) {
	if s := CollectPtr(nil); !s.IsEmpty() {
		t.Errorf("CollectPtr(nil) = %v, want empty", s.Values())
	}

	in := "3,1"
	if got := CollectPtr(&in).Values(); !cmp.Equal(got, []int{1, 3}) {
		t.Errorf("CollectPtr(%q) = %v", in, got)
	}
}

func TestCollect_StrictlyAscending(t *testing.T) {
	inputs := []string{
		"5,4,3,2,1",
		"1,1,1",
		"10, -10, 0, x, 10",
		" , , ",
		"2147483648,-2147483649,0",
	}
	for _, in := range inputs {
		vals := Collect(in).Values()
		for i := 1; i < len(vals); i++ {
			if vals[i] <= vals[i-1] {
				t.Errorf("Collect(%q) not strictly ascending: %v", in, vals)
				break
			}
		}
	}
}

func TestCollect_PermutationInvariant(t *testing.T) {
	base := []int{-4, 0, 1, 2, 3, 9, 10, 42}
	want := Collect(joinInts(base))

	rng := rand.New(rand.NewSource(1))
	noise := []string{"a", "", " ", "1x", "--2", "+"}

	for i := 0; i < 50; i++ {
		var tokens []string
		for _, v := range base {
			for r := 0; r <= rng.Intn(3); r++ {
				tokens = append(tokens, " "+strconv.Itoa(v)+" ")
			}
		}
		for r := 0; r < rng.Intn(4); r++ {
			tokens = append(tokens, noise[rng.Intn(len(noise))])
		}
		rng.Shuffle(len(tokens), func(a, b int) { tokens[a], tokens[b] = tokens[b], tokens[a] })

		input := strings.Join(tokens, ",")
		if got := Collect(input); !got.Equal(want) {
			t.Fatalf("Collect(%q) = %v, want %v", input, got.Values(), want.Values())
		}
	}
}

func TestInspect(t *testing.T) {
	s, bad := Inspect(" , 5, a, 10,, ,3, 1x")

	if got := s.Values(); !cmp.Equal(got, []int{3, 5, 10}) {
		t.Errorf("unexpected values: %v", got)
	}

	want := []types.ErrMalformedToken{
		{Token: "a", Index: 2},
		{Token: "1x", Index: 7},
	}
	if diff := cmp.Diff(want, bad); diff != "" {
		t.Errorf("malformed tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectStrict(t *testing.T) {
	t.Run("clean input", func(t *testing.T) {
		s, err := CollectStrict("3, 2, 1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Len() != 3 {
			t.Errorf("expected 3 values, got %d", s.Len())
		}
	})

	t.Run("malformed tokens", func(t *testing.T) {
		s, err := CollectStrict("1,b,2,c")
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		var mt types.ErrMalformedToken
		if !errors.As(err, &mt) {
			t.Fatalf("expected ErrMalformedToken, got %T", err)
		}
		if mt.Token != "b" || mt.Index != 1 {
			t.Errorf("unexpected first token: %+v", mt)
		}
		if !strings.Contains(err.Error(), `"c"`) {
			t.Errorf("error should mention every token: %v", err)
		}
		if got := s.Values(); !cmp.Equal(got, []int{1, 2}) {
			t.Errorf("values should still be returned, got %v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		s, err := CollectStrict("")
		if err != nil || !s.IsEmpty() {
			t.Errorf("CollectStrict(\"\") = %v, %v", s.Values(), err)
		}
	})
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
