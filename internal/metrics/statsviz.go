package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/arl/statsviz"
)

// Handler returns a mux serving the live runtime charts at /debug/statsviz.
func Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return nil, err
	}
	return mux, nil
}

// Serve runs the statsviz page on addr until ctx is done.
func Serve(ctx context.Context, addr string) error {
	h, err := Handler()
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: addr, Handler: h}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
