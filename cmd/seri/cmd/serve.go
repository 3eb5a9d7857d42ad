package cmd

import (
	"github.com/arkadda/seri"
	"github.com/arkadda/seri/api"
	"github.com/spf13/cobra"
	"gopkg.in/tomb.v2"
	"os"
	"os/signal"
	"syscall"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the auction client daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		tmb := new(tomb.Tomb)
		tmb.Go(func() error {
			return api.Start(tmb, &api.StartOpts{
				Network:      seri.Config.Network,
				Prefix:       seri.Config.Prefix,
				APIKey:       cfg.APIKey,
				Mnemonic:     cfg.Mnemonic,
				Address:      cfg.Address,
				ExplorerURL:  cfg.ExplorerURL,
				AssemblerURL: cfg.AssemblerURL,
			})
		})

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			s := <-sig
			cmdLogger.Info("shutting down", "signal", s.String())
			tmb.Kill(nil)
		}()

		return tmb.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
