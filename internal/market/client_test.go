package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIPOCalendarSendsDateAndToken(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotToken string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		q := r.URL.Query()
		gotFrom = q.Get("from")
		gotTo = q.Get("to")
		gotToken = q.Get("token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ipoCalendar":[{"symbol":"ACME","name":"Acme Corp","date":"2026-08-26","exchange":"NYSE","status":"priced","price":"18.00-20.00","numberOfShares":10000000,"totalSharesValue":230000000}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-token", time.Second)
	records, err := client.IPOCalendar(context.Background(), "2026-08-26", "2026-08-26")
	if err != nil {
		t.Fatalf("IPOCalendar returned error: %v", err)
	}

	if gotPath != "/calendar/ipo" {
		t.Errorf("request path = %q, want /calendar/ipo", gotPath)
	}
	if gotFrom != "2026-08-26" || gotTo != "2026-08-26" {
		t.Errorf("date params = %q..%q, want 2026-08-26 on both", gotFrom, gotTo)
	}
	if gotToken != "test-token" {
		t.Errorf("token param = %q, want test-token", gotToken)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Symbol != "ACME" || rec.Exchange != "NYSE" || rec.Price != "18.00-20.00" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Shares == nil || *rec.Shares != 10_000_000 {
		t.Errorf("shares = %v, want 10000000", rec.Shares)
	}
}

func TestIPOCalendarEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ipoCalendar":null}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token", time.Second)
	records, err := client.IPOCalendar(context.Background(), "2026-08-26", "2026-08-26")
	if err != nil {
		t.Fatalf("IPOCalendar returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestIPOCalendarNon2xxIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "limit exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token", time.Second)
	_, err := client.IPOCalendar(context.Background(), "2026-08-26", "2026-08-26")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if fetchErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want %d", fetchErr.StatusCode, http.StatusTooManyRequests)
	}
}

func TestIPOCalendarMalformedPayloadIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ipoCalendar": [{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token", time.Second)
	_, err := client.IPOCalendar(context.Background(), "2026-08-26", "2026-08-26")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
}

func TestIPOCalendarConnectionFailureIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	client := NewClient(srv.URL, "token", time.Second)
	_, err := client.IPOCalendar(context.Background(), "2026-08-26", "2026-08-26")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("GST", 4*60*60)
	got := Today(loc)
	want := time.Now().In(loc).Format("2006-01-02")
	if got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
}
