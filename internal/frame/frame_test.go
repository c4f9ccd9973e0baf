package frame

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/leengari/dfsummary/internal/testutil"
)

func headRows(t *testing.T, f *Frame, n int) *Frame {
	t.Helper()
	h, err := f.Head(n)
	testutil.AssertNoError(t, err, "Head")
	return h.(*Frame)
}

func typeOf(ct ColumnTypes, name string) (string, bool) {
	for _, c := range ct {
		if c.Name == name {
			return c.Type, true
		}
	}
	return "", false
}

func TestDims(t *testing.T) {
	f := New(testutil.CreateSmallFrame())
	rows, cols := f.Dims()
	testutil.AssertRowCount(t, rows, 3, "Dims")
	testutil.AssertColumnCount(t, cols, 2, "Dims")
}

func TestHead(t *testing.T) {
	f := New(testutil.CreateUsersFrame())

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"fewer than total", 2, 2},
		{"exact total", 4, 4},
		{"more than total", 10, 4},
		{"zero", 0, 0},
		{"negative drops tail", -1, 3},
		{"negative past total", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := headRows(t, f, tt.n)
			rows, cols := h.Dims()
			testutil.AssertRowCount(t, rows, tt.want, "Head")
			testutil.AssertColumnCount(t, cols, 3, "Head")
		})
	}
}

func TestHeadKeepsOrder(t *testing.T) {
	f := New(testutil.CreateUsersFrame())
	h := headRows(t, f, 2)

	got := h.df.Col("username").Records()
	if len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Errorf("expected [alice bob], got %v", got)
	}
}

func TestHeadDoesNotMutate(t *testing.T) {
	f := New(testutil.CreateUsersFrame())
	headRows(t, f, 1)

	rows, _ := f.Dims()
	testutil.AssertRowCount(t, rows, 4, "source after Head")
}

func TestHeadZeroKeepsColumns(t *testing.T) {
	f := New(testutil.CreateSmallFrame())
	h := headRows(t, f, 0)

	ct, err := h.ColumnTypes()
	testutil.AssertNoError(t, err, "ColumnTypes")
	if len(ct) != 2 || ct[0].Type != "int" || ct[1].Type != "string" {
		t.Errorf("expected [a int, b string], got %v", ct)
	}
}

func TestHeadPropagatesFrameError(t *testing.T) {
	f := New(dataframe.DataFrame{Err: errors.New("broken")})

	_, err := f.Head(2)
	testutil.AssertError(t, err, "Head on broken frame")

	_, err = f.Dtypes()
	testutil.AssertError(t, err, "Dtypes on broken frame")
}

func TestColumnTypes(t *testing.T) {
	f := New(testutil.CreateUsersFrame())

	ct, err := f.ColumnTypes()
	testutil.AssertNoError(t, err, "ColumnTypes")

	want := ColumnTypes{
		{Name: "id", Type: "int"},
		{Name: "username", Type: "string"},
		{Name: "is_active", Type: "bool"},
	}
	if len(ct) != len(want) {
		t.Fatalf("expected %d column types, got %d", len(want), len(ct))
	}
	for i := range want {
		if ct[i] != want[i] {
			t.Errorf("column %d: expected %v, got %v", i, want[i], ct[i])
		}
	}
}

func TestDeclaredTypesOverride(t *testing.T) {
	f := New(testutil.CreateUsersFrame()).WithDeclaredTypes(map[string]string{
		"id":       "INT",
		"username": "EMAIL",
	})

	ct, err := f.ColumnTypes()
	testutil.AssertNoError(t, err, "ColumnTypes")

	if got, _ := typeOf(ct, "id"); got != "INT" {
		t.Errorf("id: expected INT, got %s", got)
	}
	if got, _ := typeOf(ct, "username"); got != "EMAIL" {
		t.Errorf("username: expected EMAIL, got %s", got)
	}
	if got, _ := typeOf(ct, "is_active"); got != "bool" {
		t.Errorf("is_active: expected bool, got %s", got)
	}

	// Head keeps the declared types
	h := headRows(t, f, 1)
	hct, _ := h.ColumnTypes()
	if got, _ := typeOf(hct, "id"); got != "INT" {
		t.Errorf("head id: expected INT, got %s", got)
	}
}

func TestColumnTypesString(t *testing.T) {
	ct := ColumnTypes{{Name: "a", Type: "int"}, {Name: "b", Type: "string"}}

	want := "a    int\nb    string\n"
	if got := ct.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestString(t *testing.T) {
	f := New(testutil.CreateSmallFrame())
	h := headRows(t, f, 2)

	want := "   a  b\n0  1  x\n1  2  y\n"
	if got := h.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStringEmptyRows(t *testing.T) {
	f := New(testutil.CreateSmallFrame())
	h := headRows(t, f, 0)

	out := h.String()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected header line only, got %q", out)
	}
	testutil.AssertContains(t, out, "a  b", "empty head")
}

func TestHeadLen(t *testing.T) {
	tests := []struct {
		total, n, want int
	}{
		{3, 2, 2},
		{3, 3, 3},
		{3, 5, 3},
		{3, 0, 0},
		{3, -1, 2},
		{3, -3, 0},
		{3, -4, 0},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := headLen(tt.total, tt.n); got != tt.want {
			t.Errorf("headLen(%d, %d) = %d, want %d", tt.total, tt.n, got, tt.want)
		}
	}
}

func TestStringEscapesControlCharacters(t *testing.T) {
	f := New(dataframe.New(
		series.New([]string{"line1\nline2", "tab\there", "plain"}, series.String, "note"),
		series.New([]int{1, 2, 3}, series.Int, "n"),
	))
	h := headRows(t, f, 2)

	want := "   note          n\n" +
		"0  line1\\nline2  1\n" +
		"1  tab\\there     2\n"
	if got := h.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestColumnTypesStringEscapesNames(t *testing.T) {
	ct := ColumnTypes{{Name: "a\tb", Type: "int"}}

	want := "a\\tb    int\n"
	if got := ct.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
