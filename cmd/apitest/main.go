// Command apitest runs a smoke suite against a running prophecy cycles API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080 -key $API_KEY
//
// Besides the per-endpoint checks it walks the full catalog: every cycle
// listed by /api/v1/cycles must resolve by id and appear under both of its
// boundary years.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
)

// =============================================================================
// Response Types
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type YearCycles struct {
	Year   int             `json:"year"`
	Label  string          `json:"label"`
	Cycles []catalog.Cycle `json:"cycles"`
}

type TimelineView struct {
	Points []struct {
		Event    catalog.TimelineEvent `json:"event"`
		Position float64               `json:"position_pct"`
	} `json:"points"`
	MinYear    int  `json:"min_year"`
	MaxYear    int  `json:"max_year"`
	Degenerate bool `json:"degenerate"`
	Zoom       int  `json:"zoom"`
}

type ComparisonView struct {
	Selected []string `json:"selected"`
	Bars     []struct {
		BarPct float64 `json:"bar_pct"`
	} `json:"bars"`
	Stats *struct {
		Count        int     `json:"count"`
		MaxDuration  float64 `json:"max_duration"`
		MeanDuration float64 `json:"mean_duration"`
	} `json:"stats"`
	Empty bool `json:"empty"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		out:     out,
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Prophecy Cycles API Smoke Suite")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	cycles := tr.testCycles()
	tr.testCatalogCoverage(cycles)
	tr.testTraditions(len(cycles))
	tr.testTimeline()
	tr.testConvergence()
	tr.testComparison()
	tr.testEdgeCases()
	tr.testMetrics()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health struct {
		Status string `json:"status"`
	}
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testCycles() []catalog.Cycle {
	tr.printSection("Cycles")

	var cycles []catalog.Cycle
	if err := tr.getData("/api/v1/cycles", &cycles); err != nil {
		tr.recordError("List cycles", err.Error())
		return nil
	}
	if len(cycles) == 0 {
		tr.recordError("List cycles", "catalog is empty")
		return nil
	}
	tr.recordSuccess(fmt.Sprintf("Listed %d cycles", len(cycles)))

	var mayan []catalog.Cycle
	if err := tr.getData("/api/v1/cycles?tradition=Mayan", &mayan); err != nil {
		tr.recordError("Filter cycles", err.Error())
	} else if !allLabelled(mayan, "Mayan") || len(mayan) == 0 {
		tr.recordError("Filter cycles", fmt.Sprintf("tradition=Mayan returned %d cycles with foreign labels", len(mayan)))
	} else {
		tr.recordSuccess(fmt.Sprintf("tradition=Mayan returned %d cycles", len(mayan)))
	}

	var none []catalog.Cycle
	if err := tr.getData("/api/v1/cycles?tradition=", &none); err != nil {
		tr.recordError("Empty filter", err.Error())
	} else if len(none) != 0 {
		tr.recordError("Empty filter", fmt.Sprintf("got %d cycles, want 0", len(none)))
	} else {
		tr.recordSuccess("Empty tradition selection returns no cycles")
	}

	return cycles
}

func (tr *TestRunner) testCatalogCoverage(cycles []catalog.Cycle) {
	tr.printSection("Catalog Coverage")

	missing := 0
	for _, c := range cycles {
		var got catalog.Cycle
		if err := tr.getData("/api/v1/cycles/"+c.ID, &got); err != nil {
			tr.recordError("Cycle "+c.ID, err.Error())
			missing++
			continue
		}

		for _, year := range []int{c.StartYear, c.EndYear} {
			var yc YearCycles
			if err := tr.getData("/api/v1/cycles/year/"+strconv.Itoa(year), &yc); err != nil {
				tr.recordError(fmt.Sprintf("Year %d", year), err.Error())
				missing++
				continue
			}
			if !slices.ContainsFunc(yc.Cycles, func(x catalog.Cycle) bool { return x.ID == c.ID }) {
				tr.recordError(fmt.Sprintf("Year %d", year), fmt.Sprintf("%s not listed", c.ID))
				missing++
			}
		}

		if tr.verbose {
			fmt.Fprintf(tr.out, "    %s: %d to %d (%v years)\n", c.ID, c.StartYear, c.EndYear, c.Duration)
		}
	}

	if missing == 0 {
		tr.recordSuccess(fmt.Sprintf("All %d cycles resolve by id and boundary year", len(cycles)))
	}
}

func (tr *TestRunner) testTraditions(cycleCount int) {
	tr.printSection("Traditions")

	var traditions []struct {
		ID     string          `json:"id"`
		Name   string          `json:"name"`
		Cycles []catalog.Cycle `json:"cycles"`
	}
	if err := tr.getData("/api/v1/traditions", &traditions); err != nil {
		tr.recordError("List traditions", err.Error())
		return
	}

	grouped := 0
	for _, t := range traditions {
		if !allLabelled(t.Cycles, t.Name) {
			tr.recordError("Tradition "+t.ID, "groups a cycle with a different label")
		}
		grouped += len(t.Cycles)
	}
	tr.recordSuccess(fmt.Sprintf("Listed %d traditions grouping %d cycles", len(traditions), grouped))

	if grouped < cycleCount {
		tr.recordError("Traditions", fmt.Sprintf("%d of %d cycles are ungrouped", cycleCount-grouped, cycleCount))
	}
}

func (tr *TestRunner) testTimeline() {
	tr.printSection("Timeline")

	var view TimelineView
	if err := tr.getData("/api/v1/timeline", &view); err != nil {
		tr.recordError("Timeline", err.Error())
		return
	}
	if len(view.Points) == 0 {
		tr.recordError("Timeline", "no events")
		return
	}

	first, last := view.Points[0], view.Points[len(view.Points)-1]
	if first.Position != 0 || last.Position != 100 {
		tr.recordError("Timeline", fmt.Sprintf("endpoints at %v and %v, want 0 and 100", first.Position, last.Position))
	} else {
		tr.recordSuccess(fmt.Sprintf("%d events from %d to %d", len(view.Points), view.MinYear, view.MaxYear))
	}

	body := `{"events":[{"year":2025,"event":"A"},{"year":2025,"event":"B"}]}`
	var degenerate TimelineView
	if err := tr.postData("/api/v1/timeline/positions", body, &degenerate); err != nil {
		tr.recordError("Positions", err.Error())
	} else if !degenerate.Degenerate {
		tr.recordError("Positions", "single-year input not flagged degenerate")
	} else {
		tr.recordSuccess("Single-year input is flagged degenerate")
	}

	var stepped TimelineView
	if err := tr.getData("/api/v1/timeline?zoom=150&step=-3", &stepped); err != nil {
		tr.recordError("Zoom step", err.Error())
	} else if stepped.Zoom != 120 {
		tr.recordError("Zoom step", fmt.Sprintf("zoom = %d, want 120", stepped.Zoom))
	} else {
		tr.recordSuccess("Zoom steps from the requested level")
	}

	extreme := `{"events":[{"year":9223372036854775807,"event":"Far"},{"year":-10,"event":"Near"}]}`
	var wide TimelineView
	if err := tr.postData("/api/v1/timeline/positions", extreme, &wide); err != nil {
		tr.recordError("Extreme years", err.Error())
	} else if wide.MinYear != -10 || len(wide.Points) != 2 || wide.Points[0].Position != 0 || wide.Points[1].Position != 100 {
		tr.recordError("Extreme years", fmt.Sprintf("range [%d, %d] not ordered", wide.MinYear, wide.MaxYear))
	} else {
		tr.recordSuccess("Extreme years stay ordered")
	}
}

func (tr *TestRunner) testConvergence() {
	tr.printSection("Convergence")

	var conv catalog.Convergence
	if err := tr.getData("/api/v1/convergence", &conv); err != nil {
		tr.recordError("Convergence", err.Error())
		return
	}

	for _, e := range conv.Entries {
		if e.End != conv.Year {
			tr.recordError("Convergence", fmt.Sprintf("%s ends in %d, not %d", e.Tradition, e.End, conv.Year))
			return
		}
	}
	tr.recordSuccess(fmt.Sprintf("%d entries converge on %d", len(conv.Entries), conv.Year))
}

func (tr *TestRunner) testComparison() {
	tr.printSection("Comparison")

	var view ComparisonView
	if err := tr.getData("/api/v1/comparison", &view); err != nil {
		tr.recordError("Comparison", err.Error())
		return
	}
	if view.Empty || view.Stats == nil {
		tr.recordError("Comparison", "default selection is empty")
	} else {
		tr.recordSuccess(fmt.Sprintf("Default selection: %d cycles, mean %.0f years", view.Stats.Count, view.Stats.MeanDuration))
	}

	for _, b := range view.Bars {
		if b.BarPct < 0 || b.BarPct > 100 {
			tr.recordError("Comparison", fmt.Sprintf("bar %.2f%% out of range", b.BarPct))
		}
	}

	var empty ComparisonView
	if err := tr.getData("/api/v1/comparison?tradition=", &empty); err != nil {
		tr.recordError("Empty comparison", err.Error())
	} else if !empty.Empty || empty.Stats != nil {
		tr.recordError("Empty comparison", "empty selection returned stats")
	} else {
		tr.recordSuccess("Empty selection reports empty with null stats")
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	cases := []struct {
		name   string
		path   string
		status int
	}{
		{"Unknown cycle", "/api/v1/cycles/does-not-exist", http.StatusNotFound},
		{"Unknown tradition", "/api/v1/traditions/does-not-exist", http.StatusNotFound},
		{"Malformed year", "/api/v1/cycles/year/someday", http.StatusBadRequest},
		{"Year without event", "/api/v1/timeline/related/1000", http.StatusNotFound},
		{"Malformed zoom", "/api/v1/timeline?zoom=wide", http.StatusBadRequest},
		{"Malformed zoom step", "/api/v1/timeline?step=closer", http.StatusBadRequest},
		{"Year out of range", "/api/v1/cycles/year/2000000BCE", http.StatusBadRequest},
	}

	for _, c := range cases {
		resp, err := tr.do(http.MethodGet, c.path, "", nil)
		if err != nil {
			tr.recordError(c.name, err.Error())
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == c.status {
			tr.recordSuccess(fmt.Sprintf("%s -> %d", c.name, resp.StatusCode))
		} else {
			tr.recordError(c.name, fmt.Sprintf("status %d, want %d", resp.StatusCode, c.status))
		}
	}
}

func (tr *TestRunner) testMetrics() {
	tr.printSection("Metrics")

	header := http.Header{}
	if tr.apiKey != "" {
		header.Set("X-API-Key", tr.apiKey)
	}

	resp, err := tr.do(http.MethodGet, "/metrics", "", header)
	if err != nil {
		tr.recordError("Metrics", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		tr.recordError("Metrics", "unauthorized; pass -key")
		return
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(body, []byte("prophecy_http_requests_total")) {
		tr.recordError("Metrics", "request counter not exported")
		return
	}
	tr.recordSuccess("Request metrics exported")
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) do(method, path, body string, header http.Header) (*http.Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return tr.client.Do(req)
}

func (tr *TestRunner) getData(path string, target any) error {
	return tr.call(http.MethodGet, path, "", target)
}

func (tr *TestRunner) postData(path, body string, target any) error {
	return tr.call(http.MethodPost, path, body, target)
}

func (tr *TestRunner) call(method, path, body string, target any) error {
	resp, err := tr.do(method, path, body, nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("invalid JSON (status %d): %w", resp.StatusCode, err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, errMsg)
	}

	if err := json.Unmarshal(apiResp.Data, target); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func allLabelled(cycles []catalog.Cycle, label string) bool {
	for _, c := range cycles {
		if c.Tradition != label {
			return false
		}
	}
	return true
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintln(tr.out)
	fmt.Fprintf(tr.out, "--- %s ---\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Summary")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "\nFailures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		fmt.Fprintf(tr.out, "\nTests completed with %d failure(s)\n", tr.errorCount)
		return
	}
	fmt.Fprintln(tr.out, "\nAll tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key for /metrics")
	verbose := flag.Bool("v", false, "Verbose output (show every cycle checked)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *apiKey, os.Stdout, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
