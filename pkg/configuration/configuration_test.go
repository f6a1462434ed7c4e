package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfiguration writes configuration content to a temporary file and
// returns its path.
func writeConfiguration(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	return path
}

// TestLoad tests loading a valid configuration.
func TestLoad(t *testing.T) {
	path := writeConfiguration(t, "prompt: \"Name: \"\nmessage: Hello\nmode: masked\ncount: 2\n")

	configuration, err := Load(path)
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	expected := Configuration{Prompt: "Name: ", Message: "Hello", Mode: "masked", Count: 2}
	if *configuration != expected {
		t.Errorf("configuration mismatch: %+v != %+v", *configuration, expected)
	}
	if err := configuration.EnsureValid(); err != nil {
		t.Error("valid configuration failed validation:", err)
	}
}

// TestLoadMissing tests that missing or unspecified configuration files yield
// empty configurations.
func TestLoadMissing(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yml")} {
		if configuration, err := Load(path); err != nil {
			t.Error("unable to load missing configuration:", err)
		} else if *configuration != (Configuration{}) {
			t.Error("missing configuration is non-empty:", configuration)
		}
	}
}

// TestLoadUnknownField tests that unknown fields are rejected.
func TestLoadUnknownField(t *testing.T) {
	if _, err := Load(writeConfiguration(t, "prompt: x\ncolour: blue\n")); err == nil {
		t.Error("configuration with unknown field loaded successfully")
	}
}

// TestEnsureValid tests Configuration.EnsureValid.
func TestEnsureValid(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		configuration *Configuration
		expectValid   bool
	}{
		{nil, false},
		{&Configuration{}, true},
		{&Configuration{Mode: "auto"}, true},
		{&Configuration{Mode: "secret", Count: 3}, true},
		{&Configuration{Mode: "loud"}, false},
	}

	// Process test cases.
	for i, testCase := range testCases {
		err := testCase.configuration.EnsureValid()
		if err != nil && testCase.expectValid {
			t.Errorf("test case %d: valid configuration failed validation: %v", i, err)
		} else if err == nil && !testCase.expectValid {
			t.Errorf("test case %d: invalid configuration passed validation", i)
		}
	}
}

// TestMerge tests Merge.
func TestMerge(t *testing.T) {
	lower := &Configuration{Prompt: "Lower: ", Message: "lower", Mode: "secret", Count: 4}
	higher := &Configuration{Prompt: "Higher: ", Count: 1}
	expected := Configuration{Prompt: "Higher: ", Message: "lower", Mode: "secret", Count: 1}
	if merged := Merge(lower, higher); *merged != expected {
		t.Errorf("merged configuration mismatch: %+v != %+v", *merged, expected)
	}
}
