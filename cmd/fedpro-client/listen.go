package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/sessamekesh/fedpro-client/pkg/client"
	"github.com/sessamekesh/fedpro-client/pkg/config"
	"github.com/sessamekesh/fedpro-client/pkg/handlers"
	"github.com/sessamekesh/fedpro-client/pkg/message/call"
	"github.com/sessamekesh/fedpro-client/pkg/message/callback"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"
)

func newListenCmd(opts *rootOptions) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Connect, print callbacks until interrupted or the duration passes, then disconnect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			logger := opts.logger(cfg)
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			return listen(ctx, cfg, logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "stop listening after this long (0 means until interrupted)")
	return cmd
}

func listen(ctx context.Context, cfg config.Config, logger *zap.Logger, out io.Writer) error {
	ctx, lost := context.WithCancel(ctx)
	defer lost()

	mux := newPrintingMux(out, lost, logger)
	c := client.CreateClient(cfg.ClientParams(logger))

	connectCtx, cancelConnect := context.WithTimeout(ctx, cfg.Settings.ConnectTimeout)
	defer cancelConnect()

	var result *call.ConfigurationResult
	var err error
	if cfg.Credentials != nil {
		result, err = c.ConnectWithConfigurationAndCredentials(connectCtx, mux, cfg.CallbackModel, cfg.RTI, *cfg.Credentials)
	} else {
		result, err = c.ConnectWithConfiguration(connectCtx, mux, cfg.CallbackModel, cfg.RTI)
	}
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	fmt.Fprintf(out, "connected (%s): %+v\n", cfg.CallbackModel, result)

	atexit.Register(func() {
		if c.State() == client.ConnectionState_Connected {
			c.Disconnect(context.Background())
		}
	})

	if cfg.CallbackModel == client.CallbackModel_Evoked {
		for ctx.Err() == nil {
			if _, err := c.EvokeMultipleCallbacks(ctx, 100*time.Millisecond, time.Second); err != nil {
				logger.Warn("Evoking callbacks failed", zap.Error(err))
				break
			}
		}
	} else {
		<-ctx.Done()
	}

	if c.State() != client.ConnectionState_Connected {
		return nil
	}

	disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), cfg.Settings.ConnectTimeout)
	defer cancelDisconnect()
	if err := c.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	fmt.Fprintln(out, "disconnected")
	return nil
}

// newPrintingMux prints every callback to out. A lost connection cancels the
// listen loop through lost.
func newPrintingMux(out io.Writer, lost context.CancelFunc, logger *zap.Logger) *handlers.CallbackMux {
	mux := handlers.CreateCallbackMux(logger)

	mux.HandleFunc(callback.Kind_ConnectionLost, func(ctx context.Context, cb *callback.Request) error {
		defer lost()
		p, err := callback.DecodeConnectionLost(cb.Payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", cb.Kind, p.FaultDescription)
		return nil
	})

	mux.HandleFunc(callback.Kind_DiscoverObjectInstance, func(ctx context.Context, cb *callback.Request) error {
		p, err := callback.DecodeDiscoverObjectInstance(cb.Payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s %q of class %s", cb.Kind, p.ObjectInstance, p.ObjectInstanceName, p.ObjectClass)
		if p.ProducingFederate != nil {
			fmt.Fprintf(out, " from %s", p.ProducingFederate)
		}
		fmt.Fprintln(out)
		return nil
	})

	mux.HandleFunc(callback.Kind_RemoveObjectInstance, func(ctx context.Context, cb *callback.Request) error {
		p, err := callback.DecodeRemoveObjectInstance(cb.Payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s", cb.Kind, p.ObjectInstance)
		if !p.ProducingFederate.IsZero() {
			fmt.Fprintf(out, " from %s", p.ProducingFederate)
		}
		fmt.Fprintln(out)
		return nil
	})

	mux.HandleFunc(callback.Kind_FederationNotSaved, func(ctx context.Context, cb *callback.Request) error {
		p, err := callback.DecodeFederationNotSaved(cb.Payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", cb.Kind, p.Reason)
		return nil
	})

	mux.Fallback = handlers.CallbackHandlerFunc(func(ctx context.Context, cb *callback.Request) error {
		fmt.Fprintf(out, "%s (%d byte payload)\n", cb.Kind, len(cb.Payload))
		return nil
	})

	return mux
}
