package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"restaurant-mapper/scraper/places"
)

func TestAskQuery(t *testing.T) {
	in := strings.NewReader("43.6532\n-79.3832\n800\n20\n")
	var out bytes.Buffer

	q, err := NewPrompter(in, &out).AskQuery(1500, 60)
	if err != nil {
		t.Fatalf("AskQuery: %v", err)
	}
	want := places.Query{Location: "43.6532,-79.3832", Radius: 800, Limit: 20}
	if q != want {
		t.Errorf("got %+v, want %+v", q, want)
	}
	if !strings.Contains(out.String(), "Enter the latitude") {
		t.Errorf("missing prompt in %q", out.String())
	}
}

func TestAskQueryDefaultsAndRetries(t *testing.T) {
	in := strings.NewReader("north\n95\n10\n20\n\n0\n-1\n")
	var out bytes.Buffer

	q, err := NewPrompter(in, &out).AskQuery(1500, 60)
	if err != nil {
		t.Fatalf("AskQuery: %v", err)
	}
	// lat: "north" and 95 rejected; radius empty -> default; limit 0 accepted.
	if q.Location != "10,20" || q.Radius != 1500 || q.Limit != 0 {
		t.Errorf("got %+v", q)
	}
	if strings.Count(out.String(), "Please enter a number") != 2 {
		t.Errorf("expected two retries, output %q", out.String())
	}
}

func TestAskQueryUnlimited(t *testing.T) {
	q, err := NewPrompter(strings.NewReader("1\n2\n3\n-1\n"), &bytes.Buffer{}).AskQuery(1500, 60)
	if err != nil {
		t.Fatalf("AskQuery: %v", err)
	}
	if q.Limit != places.Unlimited {
		t.Errorf("limit: got %d", q.Limit)
	}
}

func TestAskQueryInputClosed(t *testing.T) {
	_, err := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{}).AskQuery(1500, 60)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("got %v, want ErrNoInput", err)
	}
}
