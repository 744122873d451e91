package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/google/uuid"
)

// TransferRequest is the body of POST /api/v1/wallets/transfer
type TransferRequest struct {
	ToUserID    string `json:"toUserId"`
	CoinTypeID  uint64 `json:"coinTypeId"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

// CreditRequest is the body of POST /api/v1/admin/rewards
type CreditRequest struct {
	UserID      string `json:"userId"`
	CoinTypeID  uint64 `json:"coinTypeId"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Replay       bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	Replays            int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	StatusCounts       map[int]int
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// TransferScenario defines an amount sent between two random users
type TransferScenario struct {
	Name   string
	Amount string
}

type client struct {
	http    *http.Client
	baseURL string
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of transfers to send")
	usersCount := flag.Int("users", 4, "Number of synthetic users to move coins between")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("CL_AUTH_JWT_SECRET"), "HS256 secret the server verifies tokens with")
	issuer := flag.String("issuer", "bloghead", "Token issuer")
	coinTypeID := flag.Uint64("coin", 1, "Coin type id to transfer")
	seed := flag.String("seed", "1000.00", "Reward credited to every user before the run; empty to skip")
	replayPct := flag.Int("replay", 10, "Percentage of requests that resend an already used Idempotency-Key")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	if *secret == "" {
		fmt.Println("A token secret is required: pass -secret or set CL_AUTH_JWT_SECRET")
		os.Exit(1)
	}

	users := make([]uuid.UUID, max(*usersCount, 2))
	tokens := make(map[uuid.UUID]string, len(users))
	for i := range users {
		users[i] = uuid.New()
		token, err := middleware.SignToken(*secret, *issuer, users[i], "", time.Hour)
		if err != nil {
			fmt.Printf("Failed to sign token: %v\n", err)
			os.Exit(1)
		}
		tokens[users[i]] = token
	}

	c := &client{http: &http.Client{Timeout: 10 * time.Second}, baseURL: *baseURL}

	if *seed != "" {
		adminToken, err := middleware.SignToken(*secret, *issuer, uuid.New(), middleware.RoleAdmin, time.Hour)
		if err != nil {
			fmt.Printf("Failed to sign admin token: %v\n", err)
			os.Exit(1)
		}
		for _, user := range users {
			status, err := c.post("/api/v1/admin/rewards", adminToken, uuid.NewString(), CreditRequest{
				UserID:      user.String(),
				CoinTypeID:  *coinTypeID,
				Amount:      *seed,
				Description: "load test seed",
			})
			if err != nil || status != http.StatusOK {
				fmt.Printf("Failed to seed user %s: status %d, error %v\n", user, status, err)
				os.Exit(1)
			}
		}
		fmt.Printf("Seeded %d users with %s coins each\n", len(users), *seed)
	}

	scenarios := []TransferScenario{
		{"Tip Small", "0.50"},
		{"Tip Medium", "2.00"},
		{"Tip Large", "10.00"},
		{"Gift", "25.00"},
	}

	fmt.Printf("Load testing transfers across %d users\n", len(users))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d (%d%% replays)\n", *totalRequests, *replayPct)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		StatusCounts:    make(map[int]int),
		ErrorCounts:     make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := worker{
				id:         workerID,
				client:     c,
				users:      users,
				tokens:     tokens,
				scenarios:  scenarios,
				coinTypeID: *coinTypeID,
				replayPct:  *replayPct,
				delay:      time.Duration(*delayMs) * time.Millisecond,
				stats:      stats,
			}
			w.run(jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

type worker struct {
	id         int
	client     *client
	users      []uuid.UUID
	tokens     map[uuid.UUID]string
	scenarios  []TransferScenario
	coinTypeID uint64
	replayPct  int
	delay      time.Duration
	stats      *TestStats
}

type sentTransfer struct {
	from uuid.UUID
	key  string
	body TransferRequest
}

func (w worker) run(jobs <-chan int, results chan<- TestResult) {
	var sent []sentTransfer

	for jobID := range jobs {
		if w.delay > 0 {
			time.Sleep(w.delay)
		}

		var t sentTransfer
		replay := len(sent) > 0 && rand.Intn(100) < w.replayPct
		if replay {
			t = sent[rand.Intn(len(sent))]
		} else {
			from := w.users[rand.Intn(len(w.users))]
			to := from
			for to == from {
				to = w.users[rand.Intn(len(w.users))]
			}
			scenario := w.scenarios[rand.Intn(len(w.scenarios))]

			w.stats.Lock.Lock()
			w.stats.ScenarioStats[scenario.Name]++
			w.stats.Lock.Unlock()

			t = sentTransfer{
				from: from,
				key:  fmt.Sprintf("load-%d-%d-%s", w.id, jobID, uuid.NewString()[:8]),
				body: TransferRequest{
					ToUserID:    to.String(),
					CoinTypeID:  w.coinTypeID,
					Amount:      scenario.Amount,
					Description: scenario.Name,
				},
			}
			sent = append(sent, t)
		}

		startTime := time.Now()
		status, err := w.client.post("/api/v1/wallets/transfer", w.tokens[t.from], t.key, t.body)
		result := TestResult{
			Replay:       replay,
			ResponseTime: time.Since(startTime),
			StatusCode:   status,
			Error:        err,
		}
		if err == nil {
			result.Success = status == http.StatusOK
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", status)
			}
		}
		results <- result
	}
}

func (c *client) post(path, token, idempotencyKey string, body any) (int, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(middleware.IdempotencyKeyHeader, idempotencyKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}
	if result.Replay {
		s.Replays++
	}
	s.StatusCounts[result.StatusCode]++

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func printResults(stats *TestStats) {
	if stats.TotalRequests == 0 || stats.TotalTime <= 0 {
		fmt.Println("No requests were sent")
		return
	}

	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime, p50, p90, p95, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(n)

		sortedTimes := slices.Clone(stats.ResponseTimes)
		slices.Sort(sortedTimes)
		p50 = sortedTimes[n*50/100]
		p90 = sortedTimes[n*90/100]
		p95 = sortedTimes[n*95/100]
		p99 = sortedTimes[n*99/100]
	}

	line := strings.Repeat("=", 17)
	fmt.Printf("\n%s TEST RESULTS %s\n", line, line)
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Idempotent Replays:  %d\n", stats.Replays)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful TPS:      %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		fmt.Printf("%-5d: %d\n", code, stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println(strings.Repeat("=", 48))
}
