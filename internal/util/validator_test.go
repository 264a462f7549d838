package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type pinPayload struct {
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

func newTestValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterTagNameFunc(v)
	return v
}

func ptr(v float64) *float64 { return &v }

func TestGenerateFieldErrorsRequired(t *testing.T) {
	v := newTestValidator()

	err := v.Struct(pinPayload{Latitude: ptr(10)})
	if err == nil {
		t.Fatal("expected validation error for missing longitude")
	}

	errs := GenerateFieldErrors(err)
	if len(errs) != 1 {
		t.Fatalf("expected error on one field, got %v", errs)
	}

	msgs, ok := errs["longitude"]
	if !ok || len(msgs) != 1 {
		t.Fatalf("expected longitude error, got %v", errs)
	}
	if msgs[0] != "The longitude field is required." {
		t.Errorf("unexpected message: %q", msgs[0])
	}
}

func TestGenerateFieldErrorsCoordinateRange(t *testing.T) {
	v := newTestValidator()

	err := v.Struct(pinPayload{Latitude: ptr(90.0001), Longitude: ptr(-74)})
	if err == nil {
		t.Fatal("expected validation error for latitude out of range")
	}

	errs := GenerateFieldErrors(err)
	msgs, ok := errs["latitude"]
	if !ok {
		t.Fatalf("expected latitude error, got %v", errs)
	}
	if msgs[0] != "Latitude must be between -90 and 90 degrees." {
		t.Errorf("unexpected message: %q", msgs[0])
	}
	if _, ok := errs["longitude"]; ok {
		t.Errorf("longitude should not carry an error: %v", errs)
	}
}

func TestInclusiveBoundariesAreValid(t *testing.T) {
	v := newTestValidator()

	boundaries := []pinPayload{
		{Latitude: ptr(90), Longitude: ptr(180)},
		{Latitude: ptr(-90), Longitude: ptr(-180)},
		{Latitude: ptr(0), Longitude: ptr(0)},
	}

	for _, payload := range boundaries {
		if err := v.Struct(payload); err != nil {
			t.Errorf("boundary payload %v should be valid, got %v", payload, err)
		}
	}
}

func TestOutOfRangeCoordinatesAreInvalid(t *testing.T) {
	v := newTestValidator()

	invalid := []pinPayload{
		{Latitude: ptr(90.0000001), Longitude: ptr(0)},
		{Latitude: ptr(-90.1), Longitude: ptr(0)},
		{Latitude: ptr(0), Longitude: ptr(180.0001)},
		{Latitude: ptr(0), Longitude: ptr(-181)},
	}

	for _, payload := range invalid {
		if err := v.Struct(payload); err == nil {
			t.Errorf("payload %v should fail validation", payload)
		}
	}
}

func TestGenerateFieldErrorsMax(t *testing.T) {
	v := newTestValidator()

	type regionPayload struct {
		Name string `json:"name" binding:"required,max=5"`
	}

	err := v.Struct(regionPayload{Name: "toolongname"})
	if err == nil {
		t.Fatal("expected validation error for name over max")
	}

	errs := GenerateFieldErrors(err)
	msgs, ok := errs["name"]
	if !ok || msgs[0] != "The name may not be greater than 5 characters." {
		t.Errorf("unexpected errors: %v", errs)
	}
}
