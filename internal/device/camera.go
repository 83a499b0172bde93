package device

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CommandCamera launches an external capture command
// (termux-camera-photo compatible: takes the output jpeg path as argument)
// and re-encodes the shot at reduced quality for an embeddable base64 payload.
type CommandCamera struct {
	cmd     string
	quality int
	confirm Confirmer
	log     *zap.Logger
}

func NewCommandCamera(cmd string, quality int, confirm Confirmer, log *zap.Logger) *CommandCamera {
	return &CommandCamera{cmd: cmd, quality: quality, confirm: confirm, log: log}
}

var captureTarget = func() string {
	return filepath.Join(os.TempDir(), "placerec-"+uuid.NewString()+".jpg")
}

func (c *CommandCamera) RequestPermission(ctx context.Context) (bool, error) {
	return c.confirm.Confirm("Allow access to device camera?")
}

func (c *CommandCamera) Capture(ctx context.Context) (Photo, error) {
	path := captureTarget()

	if _, err := runCommand(ctx, c.cmd, path); err != nil {
		c.log.Error("camera command failed", zap.String("cmd", c.cmd), zap.Error(err))
		return Photo{}, fmt.Errorf("capture photo: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		// nothing written: user backed out of the camera UI
		_ = os.Remove(path)
		return Photo{}, ErrCancelled
	}

	photo := Photo{URI: "file://" + path}

	payload, err := c.reencode(path)
	if err != nil {
		// keep the raw file URI when the embedded encoding is unavailable
		c.log.Warn("photo re-encode failed, keeping raw uri", zap.Error(err))
		return photo, nil
	}
	photo.Base64 = payload
	return photo, nil
}

func (c *CommandCamera) reencode(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.quality}); err != nil {
		return "", err
	}

	c.log.Info("photo captured",
		zap.String("path", path),
		zap.Int("quality", c.quality),
		zap.Int("size", buf.Len()))

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
