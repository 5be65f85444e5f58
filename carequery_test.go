package carequery

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestFacade_MatchesBuild(t *testing.T) {
	p := &QueryParams{EndDate: "2020-06-01", Gender: "F", Locations: []string{"1"}}
	builders := map[Kind]func(*QueryParams) *Document{
		Enrolled:    EnrolledInCareQuery,
		Active:      ActiveInCareQuery,
		TransferOut: TransferOutQuery,
	}
	for kind, build := range builders {
		t.Run(string(kind), func(t *testing.T) {
			doc, err := Build(context.Background(), kind, p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.String() != build(p).String() {
				t.Errorf("Build and direct builder differ:\n%s\n%s", doc, build(p))
			}
		})
	}
}

func TestBuild_Validates(t *testing.T) {
	_, err := Build(context.Background(), Enrolled, &QueryParams{LowerAgeLimit: Years(-1)})
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}

	_, err = Build(context.Background(), Kind("retained"), nil)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestTransferOutQuery_EmptyParams(t *testing.T) {
	must := TransferOutQuery(nil).Filter("transferOut")
	if len(must) != 1 {
		t.Fatalf("must count = %d, want 1", len(must))
	}
	if must[0].Bool == nil || len(must[0].Bool.Should) != 2 {
		t.Errorf("must[0] = %+v, want two-way should", must[0])
	}
}

func TestDocument_Defaults(t *testing.T) {
	b, err := json.Marshal(ActiveInCareQuery(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw["index"] != DefaultIndex || raw["type"] != DefaultType {
		t.Errorf("index/type = %v/%v", raw["index"], raw["type"])
	}
	body, ok := raw["body"].(map[string]any)
	if !ok {
		t.Fatalf("body = %T", raw["body"])
	}
	if body["size"] != float64(0) {
		t.Errorf("body.size = %v, want 0", body["size"])
	}
}
