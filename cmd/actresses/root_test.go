package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const actressBody = `{"id":1,"name":"Meryl Streep","birth_year":1949,"death_year":2020,"biography":"",` +
	`"image":"","most_famous_movies":["a","b","c"],"awards":"","nationality":"American"}`

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "22", "-3"})
	if err != nil {
		t.Fatalf("parseIDs failed: %v", err)
	}

	if len(ids) != 3 || ids[0] != 1 || ids[1] != 22 || ids[2] != -3 {
		t.Errorf("parseIDs() = %v", ids)
	}

	if _, err := parseIDs([]string{"1", "two"}); err == nil {
		t.Error("parseIDs expected error for non-numeric id")
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_Many(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/actresses/1" {
			_, _ = w.Write([]byte(actressBody))
			return
		}

		http.NotFound(w, r)
	}))
	defer srv.Close()

	out, err := runCmd(t, "many", "1", "2", "--base-url", srv.URL, "--log-level", "error")
	if err != nil {
		t.Fatalf("many failed: %v", err)
	}

	if !strings.Contains(out, "Meryl Streep") {
		t.Errorf("output missing record:\n%s", out)
	}

	if !strings.Contains(out, "| 2   | -   |") {
		t.Errorf("output missing absent slot:\n%s", out)
	}
}

func TestRootCmd_GetUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := runCmd(t, "get", "5", "--base-url", srv.URL, "--log-level", "error", "--json")
	if err == nil || !strings.Contains(err.Error(), "actress unavailable: 5") {
		t.Errorf("get error = %v", err)
	}
}
