package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// WebServer serves the interactive dashboard and its JSON API.
type WebServer struct {
	config *Config
	addr   string
}

// NewWebServer creates a new web server instance.
func NewWebServer(config *Config, addr string) *WebServer {
	return &WebServer{
		config: config,
		addr:   addr,
	}
}

// APIMetricsRequest is the POST body for a metrics calculation. The dataset
// sections are optional; when present they replace the corresponding config
// section for this request only, with zero fields falling back to the
// standard dataset.
type APIMetricsRequest struct {
	AdoptionRate float64          `json:"adoption_rate"`
	Incumbent    *TreatmentConfig `json:"incumbent,omitempty"`
	Candidate    *TreatmentConfig `json:"candidate,omitempty"`
	Outcomes     *OutcomeConfig   `json:"outcomes,omitempty"`
}

// applyOverrides returns base with any dataset sections from the request
// swapped in. The base config is never mutated.
func applyOverrides(base *Config, req APIMetricsRequest) *Config {
	if req.Incumbent == nil && req.Candidate == nil && req.Outcomes == nil {
		return base
	}

	config := *base
	if req.Incumbent != nil {
		config.Incumbent = *req.Incumbent
	}
	if req.Candidate != nil {
		config.Candidate = *req.Candidate
	}
	if req.Outcomes != nil {
		config.Outcomes = *req.Outcomes
	}
	config.ApplyDefaults()
	return &config
}

// APIMetricsResponse carries the derived metrics plus the chart specs the
// dashboard renders from.
type APIMetricsResponse struct {
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
	Metrics    *Metrics   `json:"metrics,omitempty"`
	LivesChart *ChartSpec `json:"lives_chart,omitempty"`
	CostChart  *ChartSpec `json:"cost_chart,omitempty"`
}

// APISweepResponse carries the adoption-rate sweep.
type APISweepResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Sweep   *SweepResult `json:"sweep,omitempty"`
}

func (ws *WebServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/metrics", ws.handleMetrics)
	mux.HandleFunc("/api/sweep", ws.handleSweep)
	mux.HandleFunc("/api/export-csv", ws.handleExportCSV)
	mux.HandleFunc("/api/download-pdf", ws.handleDownloadPDF)
	return mux
}

// listen binds the address (use :0 for auto-assign) and returns the
// listener plus a browser-friendly URL.
func (ws *WebServer) listen() (net.Listener, string, error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return nil, "", err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}
	return listener, url, nil
}

// Start starts the web server and opens the dashboard in the browser.
func (ws *WebServer) Start() error {
	listener, url, err := ws.listen()
	if err != nil {
		return err
	}

	log.Printf("Starting web server on %s", listener.Addr().String())
	log.Printf("Opening %s in your browser...", url)

	go openBrowser(url)

	return http.Serve(listener, ws.routes())
}

// StartForEmbedded starts the server and returns the URL and a cleanup
// function. Unlike Start(), this does NOT open the browser and does NOT
// block; the caller owns the window and the shutdown.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, url, err := ws.listen()
	if err != nil {
		return "", nil, err
	}

	log.Printf("Starting embedded web server on %s", listener.Addr().String())

	server := &http.Server{Handler: ws.routes()}
	go func() {
		if err := server.Serve(listener); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}

	return url, cleanup, nil
}

// handleIndex serves the dashboard page.
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, dashboardHTML)
}

// handleGetConfig returns the active configuration.
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if ws.config == nil {
		defaultConfig, err := LoadDefaultConfig()
		if err != nil {
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(defaultConfig)
		return
	}

	json.NewEncoder(w).Encode(ws.config)
}

// activeConfig returns the loaded config or the embedded defaults.
func (ws *WebServer) activeConfig() *Config {
	if ws.config != nil {
		return ws.config
	}
	config, err := LoadDefaultConfig()
	if err != nil {
		// The embedded default config is compiled in; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded default config invalid: %v", err))
	}
	return config
}

// requestRate extracts the adoption rate from the query string.
func requestRate(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("rate")
	if raw == "" {
		return 0, fmt.Errorf("missing rate parameter")
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q", raw)
	}
	return rate, nil
}

// handleMetrics computes the metrics and chart specs for one adoption rate.
func (ws *WebServer) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APIMetricsRequest
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			sendJSONError(w, fmt.Sprintf("invalid request body: %v", err))
			return
		}
	} else {
		rate, err := requestRate(r)
		if err != nil {
			sendJSONError(w, err.Error())
			return
		}
		req.AdoptionRate = rate
	}
	if err := ValidateAdoptionRate(req.AdoptionRate); err != nil {
		sendJSONError(w, err.Error())
		return
	}

	config := applyOverrides(ws.activeConfig(), req)
	rate := req.AdoptionRate
	metrics := CalculateMetrics(rate, config)
	livesChart := BuildLivesSavedChart(metrics, config)
	costChart := BuildCostChart(metrics, config)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APIMetricsResponse{
		Success:    true,
		Metrics:    &metrics,
		LivesChart: &livesChart,
		CostChart:  &costChart,
	})
}

// handleSweep runs an adoption-rate sweep. Range and step default to the
// configured sweep settings and can be overridden with query parameters.
func (ws *WebServer) handleSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	config := ws.activeConfig()
	min, max, step := config.Sweep.MinRate, config.Sweep.MaxRate, config.Sweep.StepSize

	q := r.URL.Query()
	var err error
	if raw := q.Get("min"); raw != "" {
		if min, err = strconv.ParseFloat(raw, 64); err != nil {
			sendJSONError(w, fmt.Sprintf("invalid min %q", raw))
			return
		}
	}
	if raw := q.Get("max"); raw != "" {
		if max, err = strconv.ParseFloat(raw, 64); err != nil {
			sendJSONError(w, fmt.Sprintf("invalid max %q", raw))
			return
		}
	}
	if raw := q.Get("step"); raw != "" {
		if step, err = strconv.ParseFloat(raw, 64); err != nil {
			sendJSONError(w, fmt.Sprintf("invalid step %q", raw))
			return
		}
	}

	sweep, err := RunAdoptionSweep(config, min, max, step)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISweepResponse{Success: true, Sweep: &sweep})
}

// handleExportCSV returns the sweep as a CSV download and keeps a copy
// under exports/.
func (ws *WebServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	config := ws.activeConfig()
	sweep, err := SweepFromConfig(config)
	if err != nil {
		sendJSONError(w, err.Error())
		return
	}

	filename := fmt.Sprintf("impact-sweep-%s.csv", time.Now().Format("2006-01-02-150405"))

	// Best-effort local copy; the download still succeeds without it.
	if err := os.MkdirAll("exports", 0755); err == nil {
		path := filepath.Join("exports", filename)
		if f, err := os.Create(path); err == nil {
			if err := sweep.WriteCSV(f); err != nil {
				log.Printf("Warning: failed to write %s: %v", path, err)
			}
			f.Close()
			log.Printf("CSV export saved to %s", path)
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := sweep.WriteCSV(w); err != nil {
		log.Printf("CSV download error: %v", err)
	}
}

// handleDownloadPDF returns the impact report PDF for one adoption rate.
func (ws *WebServer) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rate, err := requestRate(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ValidateAdoptionRate(rate); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config := ws.activeConfig()
	metrics := CalculateMetrics(rate, config)

	pdfBytes, err := GenerateImpactPDFReport(config, metrics)
	if err != nil {
		http.Error(w, "Failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("impact-report-%.0fpct.pdf", rate)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	w.Write(pdfBytes)
}

// sendJSONError writes a JSON error envelope with a 400 status.
func sendJSONError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(APIMetricsResponse{Success: false, Error: msg})
}
