package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestInterpolateDefaults(t *testing.T) {
	withEnv(t, map[string]string{
		"UPLINE_HTTP_ADDRESS":         ":9090",
		"UPLINE_FEATURE_REGISTRATION": "false",
	})

	conf := NewDefaultConfig()

	if err := Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":9090", string(conf.HTTP.Address); e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := "data.db", string(conf.Store.Path); e != g {
		t.Errorf("conf.Store.Path: expected '%v', got '%v'", e, g)
	}

	if e, g := 0, len(conf.HTTP.Session.Keys); e != g {
		t.Errorf("len(conf.HTTP.Session.Keys): expected '%v', got '%v'", e, g)
	}

	features, err := conf.Site.DecodeFeatures()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if features.Registration {
		t.Errorf("features.Registration: expected 'false', got 'true'")
	}

	if !features.ContactForm {
		t.Errorf("features.ContactForm: expected 'true', got 'false'")
	}

	levels, err := conf.Income.Distribution()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 5, len(levels); e != g {
		t.Errorf("len(levels): expected '%v', got '%v'", e, g)
	}
}

func TestDumpComments(t *testing.T) {
	var buff bytes.Buffer

	if err := Dump(&buff, NewDefaultConfig()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	dumped := buff.String()

	for _, expected := range []string{"# Webserver configuration", "# Income distribution plan", "${UPLINE_STORE_PATH:-data.db}"} {
		if !strings.Contains(dumped, expected) {
			t.Errorf("dump: expected to contain '%s'", expected)
		}
	}
}

func TestIncomeDistribution(t *testing.T) {
	income := Income{
		Levels: []IncomeLevel{
			{Label: "Direct", Percent: 60},
			{Label: "Second", Percent: 50},
		},
	}

	if _, err := income.Distribution(); !errors.Is(err, ErrInvalidDistribution) {
		t.Errorf("err: expected '%v', got '%v'", ErrInvalidDistribution, err)
	}

	income.Levels[1].Percent = -1

	if _, err := income.Distribution(); !errors.Is(err, ErrInvalidDistribution) {
		t.Errorf("err: expected '%v', got '%v'", ErrInvalidDistribution, err)
	}
}

func TestDecodeUnknownFeature(t *testing.T) {
	site := Site{
		Features: &InterpolatedMap{
			Data: map[string]any{
				"teleportation": "true",
			},
		},
	}

	if _, err := site.DecodeFeatures(); err == nil {
		t.Errorf("expected an error for unknown feature flag")
	}
}
