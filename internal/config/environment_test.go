package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()

	previous := getEnv
	getEnv = func(key string) string {
		return env[key]
	}

	t.Cleanup(func() {
		getEnv = previous
	})
}

func TestInterpolatedMap(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, parsed InterpolatedMap)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-map.yml",
			Env: map[string]string{
				"TEST_PROP1":      "foo",
				"TEST_SUB_PROP1":  "bar",
				"TEST_SUB2_PROP1": "baz",
			},
			Assert: func(t *testing.T, parsed InterpolatedMap) {
				if e, g := "foo", parsed.Data["prop1"]; e != g {
					t.Errorf("parsed.Data[\"prop1\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "bar", parsed.Data["sub"].(map[string]any)["subProp1"]; e != g {
					t.Errorf("parsed.Data[\"sub\"][\"subProp1\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "baz", parsed.Data["sub2"].(map[string]any)["sub2Prop1"].([]any)[0]; e != g {
					t.Errorf("parsed.Data[\"sub2\"][\"sub2Prop1\"][0]: expected '%v', got '%v'", e, g)
				}

				if e, g := "test", parsed.Data["sub2"].(map[string]any)["sub2Prop1"].([]any)[1]; e != g {
					t.Errorf("parsed.Data[\"sub2\"][\"sub2Prop1\"][1]: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-map.yml",
			Env:  map[string]string{},
			Assert: func(t *testing.T, parsed InterpolatedMap) {
				if e, g := "unused", parsed.Data["sub"].(map[string]any)["subProp1"]; e != g {
					t.Errorf("parsed.Data[\"sub\"][\"subProp1\"]: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			withEnv(t, tc.Env)

			var interpolatedMap InterpolatedMap

			if err := yaml.Unmarshal(data, &interpolatedMap); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, interpolatedMap)
			}
		})
	}
}

func TestInterpolatedDuration(t *testing.T) {
	data, err := os.ReadFile("testdata/environment/interpolated-duration.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	withEnv(t, map[string]string{
		"MY_DURATION": "30s",
	})

	config := struct {
		Duration *InterpolatedDuration `yaml:"duration"`
	}{
		Duration: NewInterpolatedDuration(-1),
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 30*time.Second, time.Duration(*config.Duration); e != g {
		t.Errorf("config.Duration: expected '%v', got '%v'", e, g)
	}
}

func TestInterpolatedStringSlice(t *testing.T) {
	data, err := os.ReadFile("testdata/environment/interpolated-slice.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	withEnv(t, map[string]string{
		"FIRST_KEY": "s3cr3t",
	})

	config := struct {
		Keys InterpolatedStringSlice `yaml:"keys"`
	}{}

	if err := yaml.Unmarshal(data, &config); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := []string{"s3cr3t", "static"}

	if e, g := len(expected), len(config.Keys); e != g {
		t.Fatalf("len(config.Keys): expected '%v', got '%v'", e, g)
	}

	for idx := range expected {
		if e, g := expected[idx], config.Keys[idx]; e != g {
			t.Errorf("config.Keys[%d]: expected '%v', got '%v'", idx, e, g)
		}
	}
}
