package recorder

import (
	"context"
	"errors"

	"placerec/internal/api"
	"placerec/internal/device"
	"placerec/internal/place"

	"go.uber.org/zap"
)

// PlacesAPI is the network boundary the recorder talks through.
// *api.Client is the real implementation.
type PlacesAPI interface {
	FetchAll(ctx context.Context) ([]place.Place, error)
	Create(ctx context.Context, draft place.Draft) (place.Place, error)
}

// Notifier is the modal-alert channel. Every user-visible failure and the
// save confirmation go through it.
type Notifier interface {
	Notify(title, message string)
}

// Recorder holds the screen state: the working draft, the fetched list and
// the busy flag that blocks re-entrant submission. All operations run on
// the session goroutine; nothing here is shared concurrently.
type Recorder struct {
	api    PlacesAPI
	loc    device.Locator
	cam    device.Camera
	notify Notifier
	log    *zap.Logger

	draft  place.Draft
	places []place.Place
	busy   bool
}

func New(papi PlacesAPI, loc device.Locator, cam device.Camera, notify Notifier, log *zap.Logger) *Recorder {
	return &Recorder{api: papi, loc: loc, cam: cam, notify: notify, log: log}
}

func (r *Recorder) Places() []place.Place { return r.places }
func (r *Recorder) Draft() place.Draft    { return r.draft }
func (r *Recorder) Busy() bool            { return r.busy }

func (r *Recorder) SetTitle(title string)      { r.draft.Title = title }
func (r *Recorder) SetDescription(desc string) { r.draft.Description = desc }

// LoadPlaces performs the one startup fetch. On failure the current list is
// kept and the user is notified; there is no automatic retry.
func (r *Recorder) LoadPlaces(ctx context.Context) error {
	places, err := r.api.FetchAll(ctx)
	if err != nil {
		r.log.Error("load places failed", zap.Error(err))
		r.notify.Notify("Error", "Unable to load saved places.")
		return err
	}
	r.places = places
	return nil
}

// AcquireLocation asks for location permission and stores a single
// position reading into the draft.
func (r *Recorder) AcquireLocation(ctx context.Context) error {
	granted, err := r.loc.RequestPermission(ctx)
	if err != nil {
		r.log.Error("location permission request failed", zap.Error(err))
		r.notify.Notify("Error", "Unable to request location permission.")
		return err
	}
	if !granted {
		r.notify.Notify("Permission denied", "Location access is required to tag the place.")
		return nil
	}

	coords, err := r.loc.Capture(ctx)
	if err != nil {
		r.log.Error("location reading failed", zap.Error(err))
		r.notify.Notify("Error", "Unable to read the current location.")
		return err
	}

	r.draft.SetLocation(coords.Latitude, coords.Longitude)
	return nil
}

// CapturePhoto asks for camera permission and runs one capture. A cancelled
// capture leaves the draft photo as it was and stays silent.
func (r *Recorder) CapturePhoto(ctx context.Context) error {
	granted, err := r.cam.RequestPermission(ctx)
	if err != nil {
		r.log.Error("camera permission request failed", zap.Error(err))
		r.notify.Notify("Error", "Unable to request camera permission.")
		return err
	}
	if !granted {
		r.notify.Notify("Permission denied", "Camera access is required to attach a photo.")
		return nil
	}

	photo, err := r.cam.Capture(ctx)
	if errors.Is(err, device.ErrCancelled) {
		return nil
	}
	if err != nil {
		r.log.Error("photo capture failed", zap.Error(err))
		r.notify.Notify("Error", "Unable to capture a photo.")
		return err
	}

	if photo.Base64 != "" {
		r.draft.Photo = place.DataURI(photo.Base64)
	} else {
		r.draft.Photo = photo.URI
	}
	return nil
}

func (r *Recorder) RemovePhoto() {
	r.draft.Photo = ""
}

// Submit validates the draft and sends it to the remote service. On success
// the created record is prepended to the list and the draft is cleared; on
// any failure the draft stays so the user can retry.
func (r *Recorder) Submit(ctx context.Context) error {
	if r.busy {
		return nil
	}

	if err := r.draft.Validate(); err != nil {
		r.notify.Notify("Missing information", "Fill in title, description and location before saving.")
		return err
	}

	r.busy = true
	defer func() { r.busy = false }()

	created, err := r.api.Create(ctx, r.draft)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			r.log.Error("create place rejected", zap.Int("status", statusErr.StatusCode))
			r.notify.Notify("Error", "The server rejected the new place.")
		} else {
			r.log.Error("create place failed", zap.Error(err))
			r.notify.Notify("Connection error", "Unable to reach the server. Try again.")
		}
		return err
	}

	r.places = append([]place.Place{created}, r.places...)
	r.draft.Reset()
	r.notify.Notify("Success", "Place saved!")
	return nil
}
