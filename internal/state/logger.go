// internal/state/logger.go
package state

import (
	"log"

	"go-hex-terrain/internal/event"
)

// MapLogger пишет в лог каждую новую карту.
type MapLogger struct{}

func (MapLogger) OnEvent(e event.Event) {
	info, ok := e.Data.(event.MapInfo)
	if !ok {
		return
	}
	log.Printf("map %dx%d seed=%d freq=%d noise=%s tiles=%d",
		info.Width, info.Height, info.Seed, info.Frequency, info.Noise, info.Tiles)
}
