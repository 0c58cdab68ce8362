package feeder

import (
	"math/rand"
	"regexp"
	"testing"
	"time"
)

var incidentIDRe = regexp.MustCompile(`^INC-\d{14}-\d{4}$`)

func TestIncidentID_Format(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	id := incidentID(now, rng)
	if !incidentIDRe.MatchString(id) {
		t.Errorf("unexpected id format: %q", id)
	}
	if id[4:18] != "20250601123045" {
		t.Errorf("timestamp portion wrong: %q", id)
	}
}

func TestSynthIncident(t *testing.T) {
	f := &Feeder{rng: rand.New(rand.NewSource(42))}
	seg := Segment{ID: "S1", FromLat: -26.2, FromLon: 28.0, ToLat: -26.0, ToLon: 28.2}

	known := map[string]bool{"accident": true, "roadwork": true, "closure": true, "hazard": true}

	for i := 0; i < 200; i++ {
		inc := f.synthIncident(seg)

		if !known[inc.Type] {
			t.Fatalf("type %q outside vocabulary", inc.Type)
		}
		if inc.Severity < 1 || inc.Severity > 5 {
			t.Fatalf("severity %d out of range", inc.Severity)
		}
		if inc.SegmentID != "S1" {
			t.Fatalf("segment id %q", inc.SegmentID)
		}
		if inc.Lat != -26.1 || inc.Lon != 28.1 {
			t.Fatalf("midpoint (%v, %v), want (-26.1, 28.1)", inc.Lat, inc.Lon)
		}
		if inc.Source != "simulator" {
			t.Fatalf("source %q", inc.Source)
		}
		if inc.Description == "" {
			t.Fatal("missing description")
		}
	}
}

func TestPickType_CoversVocabulary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[string]int{}
	for i := 0; i < 2000; i++ {
		seen[pickType(rng).name]++
	}

	for _, want := range []string{"accident", "roadwork", "closure", "hazard"} {
		if seen[want] == 0 {
			t.Errorf("type %q never generated", want)
		}
	}
	// accident carries the highest weight
	if seen["accident"] <= seen["closure"] {
		t.Errorf("weights not respected: %v", seen)
	}
}

func TestRound6(t *testing.T) {
	if got := round6(-26.123456789); got != -26.123457 {
		t.Errorf("got %v", got)
	}
}
