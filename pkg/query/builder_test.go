package query_test

import (
	"testing"

	"github.com/echomedia/pricer/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "widgets", "w").
		Project("id", "ID").
		Project("name", "Name").
		Project("created_at", "CreatedAt")
}

func TestProjectionTable(t *testing.T) {
	p := testProjection()
	if got := p.Table(); got != "public.widgets w" {
		t.Errorf("Table() = %q, want %q", got, "public.widgets w")
	}
}

func TestProjectionColumn(t *testing.T) {
	p := testProjection()

	if got := p.Column("Name"); got != "w.name" {
		t.Errorf("Column(Name) = %q, want %q", got, "w.name")
	}
	if got := p.Column("Unmapped"); got != "Unmapped" {
		t.Errorf("Column(Unmapped) = %q, want passthrough", got)
	}
}

func TestBuildNoConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuildWithDefaultSort(t *testing.T) {
	sql, _ := query.NewBuilder(
		testProjection(),
		query.SortField{Field: "CreatedAt", Descending: true},
	).Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w ORDER BY w.created_at DESC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestOrderByFieldsOverridesDefault(t *testing.T) {
	sql, _ := query.NewBuilder(
		testProjection(),
		query.SortField{Field: "CreatedAt", Descending: true},
	).OrderByFields([]query.SortField{{Field: "Name"}}).Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w ORDER BY w.name ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestWhereEquals(t *testing.T) {
	name := "gear"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Name", &name).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.name = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != &name {
		t.Errorf("args = %v, want [&name]", args)
	}
}

func TestWhereEqualsNilIsNoOp(t *testing.T) {
	var name *string
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Name", name).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestWhereContains(t *testing.T) {
	term := "ge"
	sql, args := query.NewBuilder(testProjection()).
		WhereContains("Name", &term).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.name ILIKE $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "%ge%" {
		t.Errorf("args = %v, want [%%ge%%]", args)
	}
}

func TestWhereSearchSpansFields(t *testing.T) {
	term := "axle"
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(&term, "Name", "ID").
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE (w.name ILIKE $1 OR w.id ILIKE $2)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("args length = %d, want 2", len(args))
	}
}

func TestParameterNumberingAcrossConditions(t *testing.T) {
	name := "gear"
	term := "ax"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Name", &name).
		WhereContains("ID", &term).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.name = $1 AND w.id ILIKE $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("args length = %d, want 2", len(args))
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection()).BuildPage(3, 10)

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w LIMIT 10 OFFSET 20"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildCount(t *testing.T) {
	name := "gear"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Name", &name).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.widgets w WHERE w.name = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args length = %d, want 1", len(args))
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc")

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v, want [abc]", args)
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("name,-createdAt, ")

	if len(fields) != 2 {
		t.Fatalf("length = %d, want 2", len(fields))
	}
	if fields[0] != (query.SortField{Field: "name"}) {
		t.Errorf("fields[0] = %v, want {name false}", fields[0])
	}
	if fields[1] != (query.SortField{Field: "createdAt", Descending: true}) {
		t.Errorf("fields[1] = %v, want {createdAt true}", fields[1])
	}
}

func TestParseSortFieldsEmpty(t *testing.T) {
	if fields := query.ParseSortFields(""); fields != nil {
		t.Errorf("fields = %v, want nil", fields)
	}
}
