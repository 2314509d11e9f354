package core

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []int
		wantErr bool
	}{
		{name: "none"},
		{name: "blank", values: []string{"", " , "}},
		{name: "single", values: []string{"1"}, want: []int{1}},
		{name: "comma separated", values: []string{"1, 2,3"}, want: []int{1, 2, 3}},
		{name: "repeated", values: []string{"3", "1,2"}, want: []int{3, 1, 2}},
		{name: "not a number", values: []string{"1,lol"}, wantErr: true},
		{name: "zero", values: []string{"0"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDs("organization", tt.values...)
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("ParseIDs() error = %v, want a *ValidationError", err)
				}
				if _, ok := vErr.FieldMap()["organization"]; !ok {
					t.Errorf("ParseIDs() field errors = %v, want organization", vErr.FieldMap())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIDs() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCleanString(t *testing.T) {
	if got := CleanString("  Hello "); got != "Hello" {
		t.Errorf("CleanString() = %q", got)
	}
	if got := CleanString("  Hello ", true); got != "hello" {
		t.Errorf("CleanString(lower) = %q", got)
	}
}
