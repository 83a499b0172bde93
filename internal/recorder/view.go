package recorder

import (
	"strings"

	"placerec/internal/place"
)

// Rendering is pure text: the form header, the section label and the list
// items compose into one scroll region, so the form scrolls with the history.

func RenderForm(d place.Draft, busy bool) string {
	var b strings.Builder

	b.WriteString("== New place ==\n")
	b.WriteString("Title:       " + orEmpty(d.Title) + "\n")
	b.WriteString("Description: " + orEmpty(d.Description) + "\n")

	if d.HasLocation() {
		b.WriteString("Location:    " + place.FormatCoordinates(*d.Latitude, *d.Longitude) + "\n")
	} else {
		b.WriteString("Location:    (not set)\n")
	}

	if d.HasPhoto() {
		b.WriteString("Photo:       attached (use 'unphoto' to remove)\n")
	} else {
		b.WriteString("Photo:       (none)\n")
	}

	if busy {
		b.WriteString("[ Saving... ]\n")
	} else {
		b.WriteString("[ Save ]\n")
	}

	b.WriteString("\n-- Saved places --\n")
	return b.String()
}

func RenderPlace(p place.Place) string {
	var b strings.Builder

	b.WriteString("* " + p.Title)
	if p.HasPhoto() {
		b.WriteString("  [photo]")
	}
	b.WriteString("\n")
	b.WriteString("  " + p.Description + "\n")
	b.WriteString("  " + place.FormatCoordinates(p.Latitude, p.Longitude) + "\n")

	if date := place.FormatCreatedAt(p.CreatedAt); date != "" {
		b.WriteString("  " + date + "\n")
	}
	return b.String()
}

// RenderScreen composes the whole scrollable region.
func RenderScreen(r *Recorder) string {
	var b strings.Builder
	b.WriteString(RenderForm(r.Draft(), r.Busy()))

	places := r.Places()
	if len(places) == 0 {
		b.WriteString("(no places saved yet)\n")
		return b.String()
	}
	for _, p := range places {
		b.WriteString(RenderPlace(p))
	}
	return b.String()
}

func orEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}
