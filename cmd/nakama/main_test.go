package main

import (
	"context"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"
)

type quietLogger struct{}

func (quietLogger) Debug(string, ...interface{}) {}
func (quietLogger) Info(string, ...interface{})  {}
func (quietLogger) Warn(string, ...interface{})  {}
func (quietLogger) Error(string, ...interface{}) {}
func (quietLogger) WithField(string, interface{}) runtime.Logger {
	return quietLogger{}
}
func (quietLogger) WithFields(map[string]interface{}) runtime.Logger {
	return quietLogger{}
}
func (quietLogger) Fields() map[string]interface{} {
	return nil
}

func TestInitModuleRejectsBadEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown card year", map[string]string{"mahjong.card_year": "1999"}},
		{"unknown difficulty", map[string]string{"mahjong.difficulty": "expert"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, tt.env)
			if err := InitModule(ctx, quietLogger{}, nil, nil, nil); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
