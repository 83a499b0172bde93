package recorder

import (
	"strings"
	"testing"

	"placerec/internal/place"

	"go.uber.org/zap"
)

func TestRenderForm(t *testing.T) {
	var d place.Draft
	out := RenderForm(d, false)
	if !strings.Contains(out, "Title:       (empty)") {
		t.Fatalf("expected empty title marker:\n%s", out)
	}
	if !strings.Contains(out, "Location:    (not set)") {
		t.Fatalf("expected unset location marker:\n%s", out)
	}
	if !strings.Contains(out, "[ Save ]") {
		t.Fatalf("expected enabled save control:\n%s", out)
	}
	if !strings.Contains(out, "-- Saved places --") {
		t.Fatalf("expected history section label:\n%s", out)
	}

	d.Title = "Praia"
	d.Description = "Linda"
	d.SetLocation(12.345678, -38.123456)
	d.Photo = "data:image/jpeg;base64,x"
	out = RenderForm(d, true)
	if !strings.Contains(out, "12.3457, -38.1235") {
		t.Fatalf("expected formatted coordinates:\n%s", out)
	}
	if !strings.Contains(out, "Photo:       attached") {
		t.Fatalf("expected photo attached marker:\n%s", out)
	}
	if !strings.Contains(out, "[ Saving... ]") || strings.Contains(out, "[ Save ]") {
		t.Fatalf("save control must be disabled while busy:\n%s", out)
	}
}

func TestRenderPlace(t *testing.T) {
	photo := "https://cdn.example/p.jpg"
	p := place.Place{
		Title:       "Praia de Boa Viagem",
		Description: "Linda",
		Latitude:    12.345678,
		Longitude:   -38.123456,
		Photo:       &photo,
		CreatedAt:   "2024-01-01T12:00:00Z",
	}

	out := RenderPlace(p)
	if !strings.Contains(out, "Praia de Boa Viagem") || !strings.Contains(out, "[photo]") {
		t.Fatalf("expected title and photo marker:\n%s", out)
	}
	if !strings.Contains(out, "12.3457, -38.1235") {
		t.Fatalf("expected 4-decimal coordinates:\n%s", out)
	}
	if !strings.Contains(out, place.FormatCreatedAt(p.CreatedAt)) {
		t.Fatalf("expected localized date:\n%s", out)
	}
}

func TestRenderPlaceWithoutOptionalFields(t *testing.T) {
	out := RenderPlace(place.Place{Title: "T", Description: "D", Latitude: 1, Longitude: 2})
	if strings.Contains(out, "[photo]") {
		t.Fatalf("unexpected photo marker:\n%s", out)
	}
	if strings.Count(out, "\n") != 3 {
		t.Fatalf("expected three lines without a date:\n%s", out)
	}
}

func TestRenderScreen(t *testing.T) {
	r := New(&fakeAPI{}, nil, nil, &fakeNotifier{}, zap.NewNop())
	out := RenderScreen(r)
	if !strings.Contains(out, "(no places saved yet)") {
		t.Fatalf("expected empty list marker:\n%s", out)
	}

	r.places = []place.Place{{Title: "A", Description: "a"}, {Title: "B", Description: "b"}}
	out = RenderScreen(r)
	if strings.Index(out, "* A") > strings.Index(out, "* B") {
		t.Fatalf("most recent entry must render first:\n%s", out)
	}
	if strings.Index(out, "-- Saved places --") > strings.Index(out, "* A") {
		t.Fatalf("form must render before the history:\n%s", out)
	}
}
