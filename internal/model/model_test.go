package model

import "testing"

func TestCandidateKeyOrdering(t *testing.T) {
	tests := []struct {
		name  string
		older Candidate
		newer Candidate
	}{
		{
			name:  "months across years",
			older: Candidate{Major: "2023", Minor: "12"},
			newer: Candidate{Major: "2024", Minor: "01"},
		},
		{
			name:  "months within a year",
			older: Candidate{Major: "2024", Minor: "02"},
			newer: Candidate{Major: "2024", Minor: "03"},
		},
		{
			name:  "files same day",
			older: Candidate{Major: "20240315", Minor: "0000"},
			newer: Candidate{Major: "20240315", Minor: "1200"},
		},
		{
			name:  "files across days",
			older: Candidate{Major: "20240310", Minor: "2200"},
			newer: Candidate{Major: "20240315", Minor: "0000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.older.Key() >= tt.newer.Key() {
				t.Errorf("Key ordering wrong: %q >= %q", tt.older.Key(), tt.newer.Key())
			}
		})
	}
}

func TestSortCandidates(t *testing.T) {
	candidates := []Candidate{
		{Major: "2024", Minor: "03"},
		{Major: "2023", Minor: "12"},
		{Major: "2024", Minor: "01"},
	}

	SortCandidates(candidates)

	want := []string{"2023.12", "2024.01", "2024.03"}
	for i, c := range candidates {
		if c.String() != want[i] {
			t.Errorf("candidates[%d] = %s, want %s", i, c, want[i])
		}
	}

	latest := candidates[len(candidates)-1]
	if latest.String() != "2024.03" {
		t.Errorf("latest = %s, want 2024.03", latest)
	}
}

func TestArchiveBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		archive Archive
		want    string
	}{
		{
			name:    "v4 tree",
			archive: V4Archive("archive.routeviews.org", "bgpdata"),
			want:    "http://archive.routeviews.org/bgpdata",
		},
		{
			name:    "v6 tree",
			archive: V6Archive("archive.routeviews.org", "route-views6/bgpdata"),
			want:    "http://archive.routeviews.org/route-views6/bgpdata",
		},
		{
			name:    "host with port and slashed root",
			archive: V4Archive("127.0.0.1:8080", "/bgpdata/"),
			want:    "http://127.0.0.1:8080/bgpdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.archive.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtifactLocalName(t *testing.T) {
	art := Artifact{
		URL:       "http://archive.routeviews.org/bgpdata/2024.03/RIBS/rib.20240315.1200.bz2",
		IPVersion: V4,
	}
	if got := art.LocalName(); got != "v4-rib.20240315.1200.bz2" {
		t.Errorf("LocalName() = %q, want %q", got, "v4-rib.20240315.1200.bz2")
	}

	art.IPVersion = V6
	if got := art.LocalName(); got != "v6-rib.20240315.1200.bz2" {
		t.Errorf("LocalName() = %q, want %q", got, "v6-rib.20240315.1200.bz2")
	}
}

func TestIPVersionValid(t *testing.T) {
	if !V4.Valid() || !V6.Valid() {
		t.Error("V4 and V6 should be valid")
	}
	if IPVersion("5").Valid() {
		t.Error("IPVersion(5) should be invalid")
	}
}
