package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	// /tmp/
	//   wiki/ (entries/)
	//     subdir/
	//       nested/
	//   configured/ (encyclopedia.yaml)
	//   empty/

	baseDir := t.TempDir()
	wikiDir := filepath.Join(baseDir, "wiki")
	subDir := filepath.Join(wikiDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	configuredDir := filepath.Join(baseDir, "configured")
	emptyDir := filepath.Join(baseDir, "empty")

	for _, dir := range []string{nestedDir, configuredDir, emptyDir, filepath.Join(wikiDir, "entries")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(configuredDir, ConfigFileName), []byte("addr: :8000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantRoot  string
		wantErr   bool
	}{
		{
			name:      "Start at Root",
			startPath: wikiDir,
			wantRoot:  wikiDir,
		},
		{
			name:      "Start in Subdir",
			startPath: subDir,
			wantRoot:  wikiDir,
		},
		{
			name:      "Start Nested Deeply",
			startPath: nestedDir,
			wantRoot:  wikiDir,
		},
		{
			name:      "Start Inside Entries",
			startPath: filepath.Join(wikiDir, "entries"),
			wantRoot:  wikiDir,
		},
		{
			name:      "Config File Marker",
			startPath: configuredDir,
			wantRoot:  configuredDir,
		},
		{
			name:      "No Root Found",
			startPath: emptyDir,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindRoot() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if got != "" && filepath.Clean(got) != filepath.Clean(tt.wantRoot) {
				t.Errorf("FindRoot() = %v, want %v", got, tt.wantRoot)
			}
		})
	}
}
