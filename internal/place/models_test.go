package place

import (
	"errors"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	var d Draft
	if err := d.Validate(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected incomplete draft error, got %v", err)
	}

	d.Title = "Praia de Boa Viagem"
	d.Description = "Linda"
	if err := d.Validate(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("expected error without location, got %v", err)
	}

	d.SetLocation(-8.12, -34.90)
	if err := d.Validate(); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}
}

func TestDraftValidatePhotoOptional(t *testing.T) {
	d := Draft{Title: "t", Description: "d"}
	d.SetLocation(0, 0)
	if err := d.Validate(); err != nil {
		t.Fatalf("photo must be optional: %v", err)
	}
	if d.HasPhoto() {
		t.Fatalf("expected no photo")
	}
}

func TestDraftZeroCoordinatesAreValid(t *testing.T) {
	d := Draft{Title: "null island", Description: "wet"}
	d.SetLocation(0, 0)
	if !d.HasLocation() {
		t.Fatalf("zero coordinates must count as set")
	}
}

func TestDraftReset(t *testing.T) {
	d := Draft{Title: "t", Description: "d", Photo: "data:image/jpeg;base64,x"}
	d.SetLocation(1, 2)
	d.Reset()
	if d.Title != "" || d.Description != "" || d.Photo != "" || d.HasLocation() {
		t.Fatalf("expected empty draft after reset: %+v", d)
	}
}

func TestPlaceHasPhoto(t *testing.T) {
	var p Place
	if p.HasPhoto() {
		t.Fatalf("nil photo")
	}
	empty := ""
	p.Photo = &empty
	if p.HasPhoto() {
		t.Fatalf("empty photo string means no photo")
	}
	uri := "https://cdn.example/p.jpg"
	p.Photo = &uri
	if !p.HasPhoto() {
		t.Fatalf("expected photo")
	}
}
