package irisctl

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandTree(t *testing.T) {
	root := BuildRootCmd()
	want := map[string]bool{"predict": false, "models": false, "status": false, "health": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("missing subcommand %s", name)
		}
	}
	if f := root.PersistentFlags().Lookup("server"); f == nil {
		t.Fatal("missing --server flag")
	}
}

func TestPredictRequiresMeasurements(t *testing.T) {
	root := BuildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"predict", "--sepal-length", "5.1"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected missing required flag error")
	}
}

func TestPredictAgainstServer(t *testing.T) {
	srv := testServer(t)
	root := BuildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{
		"predict", "--server", srv.URL,
		"--sepal-length", "5.1", "--sepal-width", "3.5",
		"--petal-length", "1.4", "--petal-width", "0.2",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "setosa") {
		t.Fatalf("output=%s", out.String())
	}
}

func TestModelsAgainstServer(t *testing.T) {
	srv := testServer(t)
	root := BuildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"models", "--server", srv.URL})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "iris-v1") {
		t.Fatalf("output=%s", out.String())
	}
}

func TestHealthAgainstServer(t *testing.T) {
	srv := testServer(t)
	root := BuildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"health", "--server", srv.URL})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "ready") {
		t.Fatalf("output=%s", out.String())
	}
}
