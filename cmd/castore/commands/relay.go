package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/internal/relay"
)

// NewRelayCommand creates the relay command.
func NewRelayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Relay NATS log messages to the store",
		Long: `Subscribe to a NATS subject and post every JSON object published on it
to the store's log collection. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := NewLogger()

			store, err := CreateStore()
			if err != nil {
				return err
			}

			nc, err := relay.Dial(viper.GetString("nats_url"), "castore-relay", logger)
			if err != nil {
				return err
			}
			defer nc.Close()

			subject := viper.GetString("relay_subject")
			if subject == "" {
				subject = constants.DefaultRelaySubject
			}

			r := relay.New(store.Logs(), relay.Conn{Conn: nc},
				relay.WithSubject(subject),
				relay.WithLogger(logger),
			)

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Relaying %s to %s\n", r.Subject(), store.Base())

			return r.Run(commandContext(cmd))
		},
	}

	cmd.Flags().String("nats-url", "", "NATS server URL")
	cmd.Flags().String("subject", "", "subject to subscribe to (default \""+constants.DefaultRelaySubject+"\")")
	_ = viper.BindPFlag("nats_url", cmd.Flags().Lookup("nats-url"))
	_ = viper.BindPFlag("relay_subject", cmd.Flags().Lookup("subject"))

	return cmd
}
