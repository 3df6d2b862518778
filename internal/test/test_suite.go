// Command-line stress test that drives signup / login / recipe flows
// against a running API, races duplicate signups, and produces CSV + HTML
// reports.
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"sync"
	"time"
)

const baseURL = "http://127.0.0.1:8080"

const longInstructions = "Or kind rest bred with am shed then, in raptures building an bringing be. Elderly is detract tedious assured private so to visited."

// raceResult records one contender's outcome in a duplicate-signup race.
type raceResult struct {
	Worker    int
	Status    int
	ErrBody   string
	Timestamp time.Time
}

// ======================= HTTP helpers =======================

// newClient returns a client with its own cookie jar, so each simulated
// user carries an independent session.
func newClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{Timeout: 10 * time.Second, Jar: jar}
}

// doJSON serializes a JSON body and issues the request on the given client.
func doJSON(client *http.Client, method, path string, body any) (int, []byte, error) {
	var buf []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		buf = b
	}
	req, _ := http.NewRequest(method, baseURL+path, bytes.NewBuffer(buf))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data, nil
}

func signupRaw(client *http.Client, username, password string) (int, []byte, error) {
	body := map[string]string{"username": username, "password": password}
	return doJSON(client, http.MethodPost, "/signup", body)
}

func loginRaw(client *http.Client, username, password string) (int, []byte, error) {
	body := map[string]string{"username": username, "password": password}
	return doJSON(client, http.MethodPost, "/login", body)
}

func createRecipeRaw(client *http.Client, title, instructions string, minutes int) (int, []byte, error) {
	body := map[string]any{
		"title":               title,
		"instructions":        instructions,
		"minutes_to_complete": minutes,
	}
	return doJSON(client, http.MethodPost, "/recipes", body)
}

// ======================= smoke tests =======================

// endpointSmokeTests exercises every endpoint with positive and negative cases.
func endpointSmokeTests() error {
	username := fmt.Sprintf("smoke-%d", time.Now().UnixNano()%1000000)
	password := "SmokePwd123!"
	client := newClient()

	// Fresh signup should succeed and open a session.
	if status, data, err := signupRaw(client, username, password); err != nil || status != http.StatusCreated {
		return fmt.Errorf("signup (new) failed: status=%d err=%v body=%s", status, err, string(data))
	}

	// Duplicate signup should be rejected (422).
	if status, _, err := signupRaw(newClient(), username, password); err != nil || status != http.StatusUnprocessableEntity {
		return fmt.Errorf("signup (duplicate) expected 422, got %d err=%v", status, err)
	}

	// The session from signup authenticates check_session.
	if status, _, err := doJSON(client, http.MethodGet, "/check_session", nil); err != nil || status != http.StatusOK {
		return fmt.Errorf("check_session failed: status=%d err=%v", status, err)
	}

	// Without a session, recipe access is unauthorized.
	if status, _, err := doJSON(newClient(), http.MethodGet, "/recipes", nil); err != nil || status != http.StatusUnauthorized {
		return fmt.Errorf("recipes (unauthenticated) expected 401, got %d err=%v", status, err)
	}

	// Recipe create succeeds while authenticated.
	if status, data, err := createRecipeRaw(client, "Smoke Ham", longInstructions, 60); err != nil || status != http.StatusCreated {
		return fmt.Errorf("recipe create failed: status=%d err=%v body=%s", status, err, string(data))
	}

	// Short instructions are rejected before any row is written.
	if status, _, err := createRecipeRaw(client, "Short", strings.Repeat("x", 30), 10); err != nil || status != http.StatusUnprocessableEntity {
		return fmt.Errorf("recipe create (short instructions) expected 422, got %d err=%v", status, err)
	}

	// Login with wrong password should be unauthorized.
	if status, _, err := loginRaw(newClient(), username, "wrong-password"); err != nil || status != http.StatusUnauthorized {
		return fmt.Errorf("login (invalid creds) expected 401, got %d err=%v", status, err)
	}

	// Login success path on a fresh client.
	loginClient := newClient()
	if status, _, err := loginRaw(loginClient, username, password); err != nil || status != http.StatusOK {
		return fmt.Errorf("login (valid) failed: status=%d err=%v", status, err)
	}

	// Logout clears the session; check_session then fails.
	if status, _, err := doJSON(loginClient, http.MethodDelete, "/logout", nil); err != nil || status != http.StatusOK {
		return fmt.Errorf("logout failed: status=%d err=%v", status, err)
	}
	if status, _, err := doJSON(loginClient, http.MethodGet, "/check_session", nil); err != nil || status != http.StatusUnauthorized {
		return fmt.Errorf("check_session after logout expected 401, got %d err=%v", status, err)
	}

	log.Println("endpoint smoke tests passed: signup/login/recipes/logout scenarios verified")
	return nil
}

// ======================= concurrency test and reports =======================

// concurrentSignupTest races workers signing up the same username: exactly
// one must win with 201 and every loser must get a 422.
func concurrentSignupTest(workers int, outCSV, outHTML string) error {
	username := fmt.Sprintf("race-%d", time.Now().UnixNano()%1000000)

	results := make([]raceResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status, data, err := signupRaw(newClient(), username, "RacePwd123!")
			res := raceResult{Worker: i, Status: status, Timestamp: time.Now()}
			if err != nil {
				res.ErrBody = err.Error()
			} else if status != http.StatusCreated {
				res.ErrBody = string(data)
			}
			results[i] = res
		}(i)
	}
	wg.Wait()

	created, rejected := 0, 0
	for _, r := range results {
		switch r.Status {
		case http.StatusCreated:
			created++
		case http.StatusUnprocessableEntity:
			rejected++
		}
	}

	if err := writeCSVReport(outCSV, results); err != nil {
		return err
	}
	if err := writeHTMLReport(outHTML, results); err != nil {
		log.Printf("write HTML report error: %v", err)
	}

	if created != 1 || rejected != workers-1 {
		return fmt.Errorf("race outcome wrong: created=%d rejected=%d of %d", created, rejected, workers)
	}
	log.Printf("duplicate-signup race passed: 1 winner, %d rejected", rejected)
	return nil
}

func writeCSVReport(path string, results []raceResult) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	defer csvWriter.Flush()

	_ = csvWriter.Write([]string{"Worker", "Status", "ErrBody", "Timestamp"})
	for _, r := range results {
		_ = csvWriter.Write([]string{
			fmt.Sprintf("%d", r.Worker),
			fmt.Sprintf("%d", r.Status),
			r.ErrBody,
			r.Timestamp.Format(time.RFC3339),
		})
	}
	return nil
}

// writeHTMLReport renders a basic table so failures are easy to eyeball.
func writeHTMLReport(path string, results []raceResult) error {
	const tpl = `
<!doctype html>
<html>
<head><meta charset="utf-8"><title>Signup Race Report</title>
<style>
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align:left }
th { background: #f4f4f4; }
</style>
</head>
<body>
<h2>Signup Race Report ({{ .GeneratedAt }})</h2>
<table>
<thead><tr><th>Worker</th><th>Status</th><th>Body</th><th>Timestamp</th></tr></thead>
<tbody>
{{ range .Rows }}
<tr>
<td>{{ .Worker }}</td>
<td>{{ .Status }}</td>
<td>{{ .ErrBody }}</td>
<td>{{ .Timestamp }}</td>
</tr>
{{ end }}
</tbody>
</table>
</body>
</html>`

	data := struct {
		GeneratedAt string
		Rows        []raceResult
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        results,
	}

	t, err := template.New("report").Parse(tpl)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}

// ======================= main =======================

func main() {
	workers := 5
	outCSV := "signup_race_report.csv"
	outHTML := "signup_race_report.html"

	if err := endpointSmokeTests(); err != nil {
		log.Fatalf("endpoint smoke tests failed: %v", err)
	}

	start := time.Now()
	if err := concurrentSignupTest(workers, outCSV, outHTML); err != nil {
		log.Fatalf("concurrent test failed: %v", err)
	}
	log.Printf("concurrent test finished in %s, CSV=%s HTML=%s", time.Since(start), outCSV, outHTML)
	fmt.Println("All recipe API tests completed successfully!")
}
