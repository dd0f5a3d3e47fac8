package handler

import (
	"strings"
	"testing"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()
	long := strings.Repeat("n", 65)
	x := coordinate(1)

	cases := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "required uses json name",
			in:   &createAnnotationRequest{PositionX: &x, PositionY: &x},
			want: "position_z is required",
		},
		{
			name: "max",
			in:   &createAnnotationRequest{Name: &long, PositionX: &x, PositionY: &x, PositionZ: &x},
			want: "name must be at most 64 characters",
		},
		{
			name: "unmapped tag",
			in: &struct {
				Email string `json:"email" validate:"email"`
			}{Email: "not-an-email"},
			want: "email failed validation (email)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Error() != tc.want {
				t.Fatalf("want %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestValidator_Valid(t *testing.T) {
	x := coordinate(0)
	if err := NewValidator().Validate(&createAnnotationRequest{PositionX: &x, PositionY: &x, PositionZ: &x}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCoordinate_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: `1.5`, want: 1.5},
		{in: `"2.25"`, want: 2.25},
		{in: `" -3 "`, want: -3},
		{in: `"abc"`, wantErr: true},
		{in: `true`, wantErr: true},
	}

	for _, tc := range cases {
		var c coordinate
		err := c.UnmarshalJSON([]byte(tc.in))
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.in, err)
			continue
		}
		if float64(c) != tc.want {
			t.Errorf("%s: want %v, got %v", tc.in, tc.want, float64(c))
		}
	}
}
