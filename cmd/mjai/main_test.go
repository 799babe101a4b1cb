package main

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"mahjong/internal/config"
	"mahjong/internal/logs"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--seed", "7"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rank", []string{"rank", "--top", "1", "N", "N", "N", "N", "E", "E", "E", "W", "W", "W", "S", "S", "S"}, "NNNN EEE WWW SSS"},
		{"validate mahjong", []string{"validate", "N N N N E E E W W W S S S S"}, "mahjong: NNNN EEE WWW SSS (WindsDragons)"},
		{"validate closest", []string{"validate", "N N N N E E E W W W S S S 5D"}, "not fitting: 5D"},
		{"hint", []string{"hint", "N N N N E E E W W W S S S 5D"}, "N   KEEP"},
		{"advise", []string{"advise", "N N N N E E E W W W S S S 5D"}, "discard:    5D"},
		{"generate", []string{"generate", "--count", "5", "NNNN", "EEE", "WWW", "SSS"}, "N E W S N"},
		{"simulate", []string{"simulate", "--max-turns", "1"}, "game 1:"},
		{"simulate events", []string{"simulate", "--max-turns", "1", "--events"}, `"kind":"hand_dealt"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad tile", []string{"rank", "ZZ"}},
		{"short hand", []string{"hint", "N", "N"}},
		{"unknown year", []string{"--year", "1999", "rank", "N N N N E E E W W W S S S"}},
		{"bad difficulty", []string{"--difficulty", "expert", "advise", "N N N N E E E W W W S S S"}},
		{"unknown pattern", []string{"generate", "no such hand"}},
		{"token without secret", []string{"token", "--subject", "user123"}},
		{"missing profiles", []string{"simulate", "--profiles", "/nonexistent/profiles.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Fatalf("%v: expected an error", tt.args)
			}
		})
	}
}

func TestReloaderWhileLogging(t *testing.T) {
	reload := reloader("info")
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				logs.Debug("request served")
			}
		}
	}()
	for _, level := range []string{"warn", "error", "info", "error"} {
		cfg := config.Default()
		cfg.Log.Level = level
		reload(cfg, nil)
	}
	reload(nil, errors.New("bad yaml"))
	close(done)
	wg.Wait()
	logs.SetLevel("info")
}
