package core

import (
	"reflect"
	"testing"
)

func TestParseOrdering(t *testing.T) {
	tests := []struct {
		s    string
		want []DBOrdering
	}{
		{s: ""},
		{s: " , -"},
		{s: "average", want: []DBOrdering{{Field: "average", Ascending: true}}},
		{s: "-average, program", want: []DBOrdering{{Field: "average"}, {Field: "program", Ascending: true}}},
	}
	for _, tt := range tests {
		if got := ParseOrdering(tt.s); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseOrdering(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
	if got := (DBOrdering{Field: "average"}).String(); got != "average DESC" {
		t.Errorf("DBOrdering.String() = %q", got)
	}
}
