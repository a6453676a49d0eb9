package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/dskvich/healthy-real-ai/pkg/logger"
)

type Service interface {
	Name() string
	Run(context.Context) error
}

// Group runs its services until ctx is done or any of them fails; a failure
// stops the others. All failures are returned together.
type Group []Service

func (g Group) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	var wg sync.WaitGroup
	errCh := make(chan error, len(g))
	wg.Add(len(g))
	for _, s := range g {
		go func(s Service) {
			defer wg.Done()

			slog.Info("Starting service", "name", s.Name())
			err := s.Run(runCtx)
			if err != nil {
				slog.Error("Service failed", "name", s.Name(), logger.Err(err))
				errCh <- fmt.Errorf("%s: %w", s.Name(), err)
				cancelFn()
				return
			}
			slog.Info("Service stopped", "name", s.Name())
		}(s)
	}

	<-runCtx.Done()
	wg.Wait()

	var err error
	close(errCh)
	for srvErr := range errCh {
		err = multierror.Append(err, srvErr)
	}
	return err
}
