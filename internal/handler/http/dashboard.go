package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/domain/dashboard"
	"github.com/humbingo/hrms-backend-go/internal/handler/http/response"
	"github.com/humbingo/hrms-backend-go/internal/pkg/sse"
)

type DashboardHandler struct {
	dashboardService dashboard.DashboardService
	events           *sse.Hub
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, events *sse.Hub) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		events:           events,
	}
}

// Stats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Events handles GET /api/v1/dashboard/events — a server-sent event stream
// of check-ins and check-outs as they happen.
func (h *DashboardHandler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cleanup := h.events.Subscribe()
	defer cleanup()

	// Keep-alive comments so idle connections survive proxies
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case event, open := <-ch:
			if !open {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
			flusher.Flush()
		}
	}
}
