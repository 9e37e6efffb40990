package query

import (
	"net/url"
	"testing"
)

func TestEncode_RepeatedIDs(t *testing.T) {
	got := Encode("id", "108559295", "143051491")
	want := "id=108559295&id=143051491"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	parsed, err := url.ParseQuery(got)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	ids := parsed["id"]
	if len(ids) != 2 || ids[0] != "108559295" || ids[1] != "143051491" {
		t.Errorf("unexpected round trip: %v", ids)
	}
}

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(p *Params)
		want  string
	}{
		{"empty", func(_ *Params) {}, ""},
		{"empty_values_dropped", func(p *Params) { p.Add("id") }, ""},
		{"single", func(p *Params) { p.Add("query", "donkey") }, "query=donkey"},
		{"duplicates_preserved", func(p *Params) { p.Add("id", "1", "1", "2") }, "id=1&id=1&id=2"},
		{"insertion_order", func(p *Params) {
			p.Add("query", "cat")
			p.AddInt("page", 2)
			p.AddInt("per_page", 20)
			p.AddString("sort", "newest")
		}, "query=cat&page=2&per_page=20&sort=newest"},
		{"key_order_not_sorted", func(p *Params) {
			p.Add("zeta", "1")
			p.Add("alpha", "2")
		}, "zeta=1&alpha=2"},
		{"repeat_key_appends", func(p *Params) {
			p.Add("id", "a")
			p.Add("other", "x")
			p.Add("id", "b")
		}, "id=a&id=b&other=x"},
		{"escaping", func(p *Params) { p.Add("query", "red & blue cats") }, "query=red+%26+blue+cats"},
		{"optional_absent", func(p *Params) {
			p.AddString("query", "")
			p.AddInt("page", 0)
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p Params
			tt.build(&p)
			if got := p.Encode(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParams_AddCopiesValues(t *testing.T) {
	ids := []string{"1", "2"}
	var p Params
	p.Add("id", ids...)
	ids[0] = "changed"
	if got := p.Encode(); got != "id=1&id=2" {
		t.Errorf("Encode() = %q, caller mutation leaked", got)
	}
}

func TestParams_NilEncode(t *testing.T) {
	var p *Params
	if got := p.Encode(); got != "" {
		t.Errorf("nil Params Encode() = %q, want empty", got)
	}
}
