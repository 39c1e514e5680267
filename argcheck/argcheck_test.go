package argcheck

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	if err := Analyzer.Flags.Set("build", filepath.Join(testdata, "build")); err != nil {
		t.Fatal(err)
	}
	analysistest.Run(t, testdata, Analyzer, "a")
}
