package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fulfillment/internal/core/application/orderstore"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// StreamEvents handles GET /api/v1/events. Each store notification becomes
// one event named after its type. The stream ends when the client leaves.
func (s *Server) StreamEvents(c echo.Context) error {
	events, cancel := s.events.Subscribe(eventBuffer)
	defer cancel()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(w, ev); err != nil {
				s.logger.DebugContext(ctx, "Event stream closed", "error", err)
				return nil
			}
			w.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeEvent(w *echo.Response, ev orderstore.Event) error {
	payload := servers.OrderEvent{OrderId: apiID(ev.OrderID), Status: apiStatus(ev.Status)}
	if ev.Err != nil {
		message := ev.Err.Error()
		payload.Error = &message
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
	return err
}
