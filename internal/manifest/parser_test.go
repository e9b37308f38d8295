package manifest

import "testing"

func TestParseFile_Play(t *testing.T) {
	m, err := ParseFile(testPath("valid-play.json"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if m.Name != "Play demo" {
		t.Errorf("Name = %q, want %q", m.Name, "Play demo")
	}
	if !m.PreferRelatedApplications {
		t.Error("PreferRelatedApplications = false, want true")
	}
	if len(m.Icons) != 1 || m.Icons[0].Sizes != "192x192" {
		t.Errorf("Icons = %+v", m.Icons)
	}
	if !m.HasPlatform(PlatformPlay) {
		t.Error("HasPlatform(play) = false, want true")
	}
	if m.HasPlatform(PlatformITunes) {
		t.Error("HasPlatform(itunes) = true, want false")
	}
}

func TestStoreLinks(t *testing.T) {
	m := &WebAppManifest{
		RelatedApplications: []RelatedApplication{
			{Platform: PlatformPlay, URL: "https://play.google.com/store/apps/details?id=a"},
			{Platform: PlatformITunes, ID: "id123"},
			{Platform: PlatformWebapp, URL: "https://example.com/manifest.json"},
		},
	}
	links := m.StoreLinks()
	if len(links) != 2 {
		t.Fatalf("StoreLinks len = %d, want 2", len(links))
	}
	if links[0].Platform != PlatformPlay || links[1].Platform != PlatformWebapp {
		t.Errorf("StoreLinks order = %+v", links)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatal("expected error for truncated JSON, got nil")
	}
}

func TestParseFile_NotFound(t *testing.T) {
	if _, err := ParseFile(testPath("nonexistent.json")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}
