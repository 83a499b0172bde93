package device

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// CommandLocator reads a single position fix from an external command
// (termux-location compatible: JSON with latitude/longitude on stdout).
type CommandLocator struct {
	cmd     string
	confirm Confirmer
	log     *zap.Logger
}

func NewCommandLocator(cmd string, confirm Confirmer, log *zap.Logger) *CommandLocator {
	return &CommandLocator{cmd: cmd, confirm: confirm, log: log}
}

func (l *CommandLocator) RequestPermission(ctx context.Context) (bool, error) {
	return l.confirm.Confirm("Allow access to device location?")
}

func (l *CommandLocator) Capture(ctx context.Context) (Coordinates, error) {
	out, err := runCommand(ctx, l.cmd)
	if err != nil {
		l.log.Error("location command failed", zap.String("cmd", l.cmd), zap.Error(err))
		return Coordinates{}, fmt.Errorf("read location: %w", err)
	}

	var reading struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.Unmarshal(out, &reading); err != nil {
		return Coordinates{}, fmt.Errorf("decode location: %w", err)
	}
	if reading.Latitude == nil || reading.Longitude == nil {
		return Coordinates{}, fmt.Errorf("location reading missing coordinates")
	}

	return Coordinates{Latitude: *reading.Latitude, Longitude: *reading.Longitude}, nil
}
