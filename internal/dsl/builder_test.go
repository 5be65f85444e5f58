package dsl

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestQueryBuilder_Simple(t *testing.T) {
	doc := NewQuery("amrs", "obs").
		Aggregation("enrolled").
		Must(Term("voided", false)).
		BucketBy("person_uuid").
		MustBuild()

	if doc.Index != "amrs" {
		t.Errorf("index = %q, want amrs", doc.Index)
	}
	if doc.Type != "obs" {
		t.Errorf("type = %q, want obs", doc.Type)
	}
	if doc.Body.Size != 0 {
		t.Errorf("size = %d, want 0", doc.Body.Size)
	}

	agg, ok := doc.Body.Aggs["enrolled"]
	if !ok {
		t.Fatal("missing enrolled aggregation")
	}
	bucket := agg.Aggs["patients"].Terms
	if bucket == nil {
		t.Fatal("missing patients terms aggregation")
	}
	if bucket.Field != "person_uuid" || bucket.Size != 0 {
		t.Errorf("bucket = %+v, want person_uuid/0", *bucket)
	}
	if got := len(doc.Filter("enrolled")); got != 1 {
		t.Errorf("must count = %d, want 1", got)
	}
}

func TestQueryBuilder_MustAppendsInOrder(t *testing.T) {
	doc := NewQuery("i", "t").
		Aggregation("a").
		Must(Term("first", 1)).
		Must(Term("second", 2), Term("third", 3)).
		BucketBy("f").
		MustBuild()

	must := doc.Filter("a")
	want := []string{"first", "second", "third"}
	if len(must) != len(want) {
		t.Fatalf("must count = %d, want %d", len(must), len(want))
	}
	for i, field := range want {
		if _, ok := must[i].Term[field]; !ok {
			t.Errorf("must[%d] = %+v, want term on %s", i, must[i], field)
		}
	}
}

func TestQueryBuilder_BuildDoesNotAliasBuilder(t *testing.T) {
	b := NewQuery("i", "t").Aggregation("a").BucketBy("f").Must(Term("x", 1))
	first := b.MustBuild()
	b.Must(Term("y", 2))
	second := b.MustBuild()

	if got := len(first.Filter("a")); got != 1 {
		t.Errorf("first must count = %d, want 1", got)
	}
	if got := len(second.Filter("a")); got != 2 {
		t.Errorf("second must count = %d, want 2", got)
	}
}

func TestQueryBuilder_Validation(t *testing.T) {
	tests := []struct {
		name string
		b    *QueryBuilder
	}{
		{"no index", NewQuery("", "t").Aggregation("a").BucketBy("f")},
		{"no type", NewQuery("i", "").Aggregation("a").BucketBy("f")},
		{"no aggregation", NewQuery("i", "t").BucketBy("f")},
		{"no bucket", NewQuery("i", "t").Aggregation("a")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.b.Build()
			if !errors.Is(err, ErrInvalidQuery) {
				t.Errorf("err = %v, want ErrInvalidQuery", err)
			}
		})
	}
}

func TestQueryBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewQuery("i", "t").MustBuild()
}

func TestDocument_JSON(t *testing.T) {
	doc := NewQuery("amrs", "obs").
		Aggregation("enrolled").
		Must(Terms("encounter_type", 1, 3), Term("voided", false)).
		BucketBy("person_uuid").
		MustBuild()

	got, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"index":"amrs","type":"obs","body":{"size":0,"aggs":{"enrolled":{` +
		`"filter":{"bool":{"must":[{"terms":{"encounter_type":[1,3]}},{"term":{"voided":false}}]}},` +
		`"aggs":{"patients":{"terms":{"field":"person_uuid","size":0}}}}}}}`
	if string(got) != want {
		t.Errorf("json =\n%s\nwant\n%s", got, want)
	}
	if doc.String() != want {
		t.Errorf("String() = %s", doc.String())
	}
}

func TestDocument_FilterMissing(t *testing.T) {
	doc := NewQuery("i", "t").Aggregation("a").BucketBy("f").MustBuild()
	if got := doc.Filter("other"); got != nil {
		t.Errorf("Filter(other) = %v, want nil", got)
	}
}
