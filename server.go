package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/mdns"
	"github.com/pkg/errors"

	"github.com/ryuichi1/hiranaga-demo-app/config"
	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/export"
	"github.com/ryuichi1/hiranaga-demo-app/history"
	"github.com/ryuichi1/hiranaga-demo-app/log"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
	"github.com/ryuichi1/hiranaga-demo-app/version"
)

const (
	mdnsService  = "_hiranaga._tcp"
	historyLimit = 200
)

type ApiServer struct {
	cfg config.Parameters
	rec *recognizer.Recognizer

	histMu sync.Mutex
	hist   *history.History

	upgrader websocket.Upgrader
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewApiServer(cfg config.Parameters, rec *recognizer.Recognizer, hist *history.History) *ApiServer {
	return &ApiServer{
		cfg:  cfg,
		rec:  rec,
		hist: hist,
		upgrader: websocket.Upgrader{
			// capture clients are local pages served elsewhere
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *ApiServer) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func (s *ApiServer) writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{Data: data})
}

func (s *ApiServer) writeMessage(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{Message: msg})
}

type pointJSON struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type strokesRequest struct {
	Strokes [][]pointJSON `json:"strokes"`
}

func (req strokesRequest) drawing() *ink.Drawing {
	d := ink.NewDrawing()
	for _, stroke := range req.Strokes {
		if len(stroke) == 0 {
			continue
		}
		d.Begin(ink.Point{X: stroke[0].X, Y: stroke[0].Y})
		for _, p := range stroke[1:] {
			d.Extend(ink.Point{X: p.X, Y: p.Y})
		}
		d.End()
	}
	return d
}

// POST /api/recognize
func (s *ApiServer) handleRecognize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req strokesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	d := req.drawing()
	results, err := s.rec.Recognize(r.Context(), d.Snapshot())
	switch {
	case errors.Is(err, recognizer.ErrEmptyDrawing):
		s.writeMessage(w, "nothing to recognize")
		return
	case errors.Is(err, recognizer.ErrNotReady):
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		s.writeError(w, http.StatusBadGateway, err)
		return
	}

	s.appendHistory(d, results)
	s.writeSuccess(w, results)
}

// POST /api/render?thumb=<side>
func (s *ApiServer) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req strokesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	snap := req.drawing().Snapshot()

	var data []byte
	var err error
	if thumb := r.URL.Query().Get("thumb"); thumb != "" {
		side, perr := strconv.Atoi(thumb)
		if perr != nil || side <= 0 {
			s.writeError(w, http.StatusBadRequest, errors.New("invalid thumb size"))
			return
		}
		data, err = export.Thumbnail(s.rec, snap, uint(side))
	} else {
		data, err = export.PNG(s.rec, snap)
	}

	if errors.Is(err, recognizer.ErrEmptyDrawing) {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

// GET /api/labels
func (s *ApiServer) handleLabels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idx := s.rec.Index()
	if idx == nil {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("label index not loaded"))
		return
	}

	s.writeSuccess(w, map[string]interface{}{
		"glyphs": idx.Glyphs(),
		"kept":   idx.Len(),
		"total":  idx.Total(),
	})
}

// GET /api/history?n=<count>
func (s *ApiServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n := 20
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v <= 0 {
			s.writeError(w, http.StatusBadRequest, errors.New("invalid n"))
			return
		}
		n = v
	}

	s.histMu.Lock()
	tail := append([]history.Entry(nil), s.hist.Tail(n)...)
	s.histMu.Unlock()

	s.writeSuccess(w, tail)
}

// GET /api/version
func (s *ApiServer) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.writeSuccess(w, map[string]string{"version": version.Version})
}

type captureEvent struct {
	Event string  `json:"event"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
}

type captureReply struct {
	Event   string              `json:"event"`
	Seq     uint64              `json:"seq,omitempty"`
	Results []recognizer.Result `json:"results,omitempty"`
	Message string              `json:"message,omitempty"`
}

// /api/capture streams pen events over a websocket. Each connection
// owns one drawing. A recognize event schedules scoring without
// blocking the pen stream; completions older than the most recently
// scheduled one are dropped, so late replies never overwrite fresher
// ink.
func (s *ApiServer) handleCapture(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warning.Printf("capture upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	d := ink.NewDrawing()
	var (
		mu     sync.Mutex
		latest uint64
	)

	reply := func(rep captureReply) {
		mu.Lock()
		defer mu.Unlock()
		if err := conn.WriteJSON(rep); err != nil {
			log.Trace.Printf("capture write failed: %v", err)
		}
	}

	for {
		var ev captureEvent
		if err := conn.ReadJSON(&ev); err != nil {
			log.Trace.Printf("capture session closed: %v", err)
			return
		}

		switch ev.Event {
		case "begin":
			d.Begin(ink.Point{X: ev.X, Y: ev.Y})
		case "move":
			d.Extend(ink.Point{X: ev.X, Y: ev.Y})
		case "end":
			d.End()
		case "clear":
			d.Clear()
		case "recognize":
			seq, done := s.rec.Submit(r.Context(), d.Snapshot())
			mu.Lock()
			latest = seq
			mu.Unlock()

			go func() {
				c := <-done

				mu.Lock()
				stale := c.Seq < latest
				mu.Unlock()
				if stale {
					log.Trace.Printf("dropping stale completion %d", c.Seq)
					return
				}

				switch {
				case errors.Is(c.Err, recognizer.ErrEmptyDrawing):
					reply(captureReply{Event: "empty", Seq: c.Seq})
				case c.Err != nil:
					reply(captureReply{Event: "error", Seq: c.Seq, Message: c.Err.Error()})
				default:
					reply(captureReply{Event: "results", Seq: c.Seq, Results: c.Results})
				}
			}()
		default:
			reply(captureReply{Event: "error", Message: fmt.Sprintf("unknown event %q", ev.Event)})
		}
	}
}

func (s *ApiServer) appendHistory(d *ink.Drawing, results []recognizer.Result) {
	entry, err := history.NewEntry(d, results)
	if err != nil {
		log.Trace.Printf("cannot hash drawing for history: %v", err)
		return
	}

	s.histMu.Lock()
	defer s.histMu.Unlock()
	s.hist.Append(entry, historyLimit)
	if err := s.hist.Save(); err != nil {
		log.Warning.Printf("cannot save history: %v", err)
	}
}

func advertise(port string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(err, "could not get hostname")
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, errors.Wrap(err, "invalid port")
	}

	service, err := mdns.NewMDNSService(host, mdnsService, "", "", p, nil, []string{"hiranaga"})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mdns service")
	}
	return mdns.NewServer(&mdns.Config{Zone: service})
}

func newServerMux(server *ApiServer) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/recognize", server.handleRecognize)
	mux.HandleFunc("/api/render", server.handleRender)
	mux.HandleFunc("/api/labels", server.handleLabels)
	mux.HandleFunc("/api/history", server.handleHistory)
	mux.HandleFunc("/api/version", server.handleVersion)
	mux.HandleFunc("/api/capture", server.handleCapture)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
	<title>hiranaga REST API</title>
</head>
<body>
	<h1>hiranaga REST API</h1>
	<h2>Endpoints:</h2>
	<ul>
		<li>POST /api/recognize - Recognize a drawing</li>
		<li>POST /api/render - Render a drawing to PNG</li>
		<li>GET /api/labels - List recognizable glyphs</li>
		<li>GET /api/history - Recent recognitions</li>
		<li>WS /api/capture - Live pen capture session</li>
		<li>GET /api/version - Get version</li>
	</ul>
</body>
</html>
		`)
	})

	return mux
}

func runServerMode(cfg config.Parameters, rec *recognizer.Recognizer) {
	hist, err := history.Load()
	if err != nil {
		log.Warning.Printf("cannot load history: %v", err)
		hist = &history.History{}
	}

	server := NewApiServer(cfg, rec, hist)
	mux := newServerMux(server)

	if cfg.MDNS {
		srv, err := advertise(cfg.Port)
		if err != nil {
			log.Warning.Printf("cannot advertise service: %v", err)
		} else {
			defer srv.Shutdown()
		}
	}

	log.Info.Printf("Starting HTTP server on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Error.Fatalf("Server failed: %v", err)
	}
}
