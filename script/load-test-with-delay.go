package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/duration-engine/internal/infrastructure/adapter/api/dto"
)

// Scenario is one request shape sent against the duration API
type Scenario struct {
	Name string
	Path string
	Body any
	// ExpectedStatus lets scenarios exercise rejected requests too
	ExpectedStatus int
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

func quantity(q int64) *int64 { return &q }

func scenarios() []Scenario {
	day := dto.DurationRequest{Quantity: quantity(1), Unit: "day"}
	hours := dto.DurationRequest{Quantity: quantity(36), Unit: "hours"}
	month := dto.DurationRequest{Quantity: quantity(1), Unit: "month"}

	return []Scenario{
		{"normalize", "/durations/normalize", hours, http.StatusOK},
		{"plus", "/durations/combine", dto.CombineRequest{Left: day, Right: hours, Operation: "plus"}, http.StatusOK},
		{"divide", "/durations/combine", dto.CombineRequest{Left: hours, Right: day, Operation: "divide"}, http.StatusOK},
		{"incompatible", "/durations/combine", dto.CombineRequest{Left: day, Right: month, Operation: "plus"}, http.StatusBadRequest},
		{"apply-time", "/durations/apply/time", dto.ApplyToTimeRequest{Duration: month, Direction: "add"}, http.StatusOK},
		{"apply-date", "/durations/apply/date", dto.ApplyToDateRequest{Duration: month, Date: "2024-01-31", Direction: "add"}, http.StatusOK},
		{"composite", "/durations/composite", dto.CompositeRequest{Days: 1, Hours: 2, Minutes: 3}, http.StatusOK},
	}
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	targetRPS := flag.Float64("target", 30, "Requests per second the run should sustain")
	flag.Parse()

	all := scenarios()
	fmt.Printf("Load testing %s with %d scenarios\n", *baseURL, len(all))
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, all, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	done := make(chan struct{})
	go func() {
		for result := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[result.Scenario]++
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
		close(done)
	}()

	wg.Wait()
	close(results)
	<-done
	stats.TotalTime = time.Since(startTime)

	printResults(stats, *targetRPS)
}

func worker(baseURL string, delayMs int, all []Scenario, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := all[rand.Intn(len(all))]
		result := TestResult{Scenario: scenario.Name}

		payload, err := json.Marshal(scenario.Body)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		start := time.Now()
		resp, err := client.Post(baseURL+scenario.Path, "application/json", bytes.NewReader(payload))
		result.ResponseTime = time.Since(start)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode == scenario.ExpectedStatus
			if !result.Success {
				result.Error = fmt.Errorf("%s: HTTP status code %d", scenario.Name, resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats, targetRPS float64) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", name, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}

	fmt.Println("\n================= CONCLUSION =================")
	if rps >= targetRPS {
		fmt.Printf("Target of %.0f requests/second met (%.2f)\n", targetRPS, rps)
	} else {
		fmt.Printf("Target of %.0f requests/second NOT met (%.2f)\n", targetRPS, rps)
	}
}
