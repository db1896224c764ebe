// Command syncdiff compares the dashboard's mirrored reads against the
// scheduling service's own answers. Run it after an outage to see how far
// the local copy has drifted from the remote truth.
//
// A response the dashboard served from its cache or local store is reported
// as STALE rather than DIFF: drift is expected there and never fails the run.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

type target struct {
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

// defaultTargets covers every read the dashboard mirrors from the
// scheduling service. Breaks and practicals are local-only and never drift.
var defaultTargets = []target{
	{Path: "/api/faculty", Critical: true},
	{Path: "/api/rooms", Critical: true},
	{Path: "/api/subjects", Critical: true},
	{Path: "/api/leave-requests", Critical: true},
	{Path: "/api/timetable", Critical: false},
	{Path: "/api/statistics", Critical: false},
}

type comparison struct {
	Target           target
	DashboardStatus  int
	RemoteStatus     int
	Source           string
	StatusMatch      bool
	DataMatch        bool
	Stale            bool
	Error            error
	DurationDash     time.Duration
	DurationUpstream time.Duration
}

func main() {
	var (
		dashBase    string
		remoteBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&dashBase, "dashboard", "http://localhost:8080", "dashboard API base URL")
	flag.StringVar(&remoteBase, "remote", "http://localhost:5000", "scheduling service base URL")
	flag.StringVar(&targetsPath, "targets", "", "optional JSON targets file overriding the built-in list")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets := defaultTargets
	if targetsPath != "" {
		loaded, err := loadTargets(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		targets = loaded
	}

	client := &http.Client{Timeout: timeout}
	var (
		comparisons []comparison
		drifted     int
		stale       int
	)

	for _, t := range targets {
		comp := compareTarget(client, dashBase, remoteBase, t)
		switch {
		case comp.Error != nil:
			if t.Critical {
				drifted++
			}
		case comp.Stale:
			stale++
		case !comp.StatusMatch || !comp.DataMatch:
			if t.Critical {
				drifted++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Drifted: %d, Stale (expected): %d\n", drifted, stale)
	if drifted > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Targets []target `json:"targets"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func compareTarget(client *http.Client, dashBase, remoteBase string, tgt target) comparison {
	comp := comparison{Target: tgt}

	dashStatus, dashSource, dashData, dashDur, err := fetchData(client, dashBase, tgt.Path)
	comp.DurationDash = dashDur
	if err != nil {
		comp.Error = fmt.Errorf("dashboard request failed: %w", err)
		return comp
	}

	remoteStatus, _, remoteData, remoteDur, err := fetchData(client, remoteBase, tgt.Path)
	comp.DurationUpstream = remoteDur
	if err != nil {
		comp.Error = fmt.Errorf("scheduling service request failed: %w", err)
		return comp
	}

	comp.DashboardStatus = dashStatus
	comp.RemoteStatus = remoteStatus
	comp.Source = dashSource
	comp.StatusMatch = dashStatus == remoteStatus
	comp.DataMatch = payloadsEqual(dashData, remoteData)
	comp.Stale = dashSource == "cache" || dashSource == "local"

	return comp
}

// fetchData performs a GET and extracts the data payload from the response
// envelope. Both sides wrap their records the same way.
func fetchData(client *http.Client, base, path string) (int, string, json.RawMessage, time.Duration, error) {
	url := strings.TrimRight(base, "/") + path

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, "", nil, 0, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return resp.StatusCode, "", nil, elapsed, fmt.Errorf("read body: %w", err)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return resp.StatusCode, "", nil, elapsed, fmt.Errorf("decode envelope: %w", err)
	}

	return resp.StatusCode, resp.Header.Get("X-Data-Source"), envelope.Data, elapsed, nil
}

func payloadsEqual(a, b json.RawMessage) bool {
	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

// normalize folds whole floats into ints so the two decoders agree on
// numeric identity.
func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func printReport(results []comparison) {
	fmt.Println("Sync Drift Report")
	fmt.Println("=================")
	for _, res := range results {
		status := "OK"
		switch {
		case res.Error != nil:
			status = "ERROR"
		case res.Stale && !res.DataMatch:
			status = "STALE"
		case !res.StatusMatch || !res.DataMatch:
			status = "DIFF"
		}
		fmt.Printf("[%s] GET %s\n", status, res.Target.Path)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
			continue
		}
		fmt.Printf("  Dashboard: %d via %q (%s)\n", res.DashboardStatus, res.Source, res.DurationDash)
		fmt.Printf("  Scheduling service: %d (%s)\n", res.RemoteStatus, res.DurationUpstream)
		fmt.Printf("  Status match: %t | Data match: %t | Critical: %t\n", res.StatusMatch, res.DataMatch, res.Target.Critical)
	}
}
