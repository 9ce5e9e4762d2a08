// Command hubs drives a running irrigation server with concurrent train, predict and history
// requests for the hub ids given on the command line (see `irrigationctl seed`).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

var httpHostPort string = "127.0.0.1:1080"
var roundsPerHub int = 50

var forecasts = []string{
	"", "Fair", "Partly Cloudy", "Cloudy", "Light Rain", "Showers", "Thundery Showers",
}

var failures atomic.Int64

func main() {
	hubIDs := os.Args[1:]
	if len(hubIDs) == 0 {
		log.Fatal("usage: hubs <hub-id>...")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for _, hubID := range hubIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			setLimiter(hubID)
			post(fmt.Sprintf("http://%s/hubs/%s/train", httpHostPort, hubID))
			fmt.Printf("\rtrained hub %v", hubID)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rtrained %v hubs: used time=%v seconds, throughput=%v hubs/second\n",
		len(hubIDs), usedTime.Seconds(), float64(len(hubIDs))/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for _, hubID := range hubIDs {
		for range roundsPerHub {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doAction(hubID)
			}()
		}
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	total := len(hubIDs) * roundsPerHub * 2
	fmt.Printf(
		"\n\rdid %v actions: used time=%v seconds, throughput=%v action/second, failures=%v\n",
		total, usedTime.Seconds(), float64(total)/usedTime.Seconds(), failures.Load(),
	)
}

func setLimiter(hubID string) {
	payload := map[string]any{"rate": 1000.0, "burst": 1000}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/hubs/%s/limiter", httpHostPort, hubID), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func post(url string) {
	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		failures.Add(1)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.Status)
		failures.Add(1)
	}
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		failures.Add(1)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.Status)
		failures.Add(1)
	}
}

func doAction(hubID string) {
	forecast := forecasts[rand.IntN(len(forecasts))]
	get(fmt.Sprintf("http://%s/hubs/%s/prediction?forecast=%s", httpHostPort, hubID, url.QueryEscape(forecast)))

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -rand.IntN(14))
	get(fmt.Sprintf("http://%s/hubs/%s/history?start=%s&end=%s",
		httpHostPort, hubID, start.Format(time.DateOnly), end.Format(time.DateOnly)))

	time.Sleep(time.Duration(100+rand.IntN(1000)) * time.Millisecond)
}
