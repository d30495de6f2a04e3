package conformance

import "testing"

func TestScenarios(t *testing.T) {
	cases, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no conformance fixtures loaded")
	}

	for _, lc := range cases {
		lc := lc
		t.Run(lc.File+"/"+lc.Case.Name, func(t *testing.T) {
			if err := Run(lc.Case); err != nil {
				t.Error(err)
			}
		})
	}
}
