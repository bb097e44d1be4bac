package main

import (
	"context"
	"doctrack-service/internal/app/config"
	"doctrack-service/internal/app/delivery/cli"
	"doctrack-service/internal/app/drivers/logger"
	"doctrack-service/internal/app/services/shared/payment_gateway"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/utils"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version and Tag are set at build time through -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

func main() {
	v := viper.New()
	v.SetEnvPrefix("DOCTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var log *logrus.Logger

	rootCmd := &cobra.Command{
		Use:           "doctrackctl",
		Short:         "Operator tooling for the doctor appointment service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.NewLogrusLogger(v.GetString("env"), v.GetString("log-level"))
		},
	}
	rootCmd.PersistentFlags().String("base-url", "http://localhost:4000/api/v1", "Root URL of the versioned API")
	rootCmd.PersistentFlags().String("token", "", "Bearer token of the calling principal")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level")
	rootCmd.PersistentFlags().String("env", "development", "Environment name, production switches to JSON logs")
	v.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(verifyCmd(v, func() *logrus.Logger { return log }))
	rootCmd.AddCommand(tokenCmd(v))
	rootCmd.AddCommand(balanceCmd(func() *logrus.Logger { return log }))
	rootCmd.AddCommand(versionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func verifyCmd(v *viper.Viper, log func() *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Poll payment verification until the appointment is paid or the timeout elapses",
		RunE: func(cmd *cobra.Command, args []string) error {
			appointmentID, _ := cmd.Flags().GetString("appointment")
			reference, _ := cmd.Flags().GetString("reference")
			if appointmentID == "" || reference == "" {
				return errors.New("--appointment and --reference are required")
			}

			interval := v.GetDuration("interval")
			timeout := v.GetDuration("timeout")
			client := cli.NewAPIClient(v.GetString("base-url"), v.GetString("token"), 15*time.Second)
			poller := cli.NewPoller(clock.New(), interval, timeout, log())

			log().WithFields(logrus.Fields{
				"appointment": appointmentID,
				"reference":   reference,
				"interval":    interval.String(),
				"timeout":     timeout.String(),
			}).Info("waiting for payment confirmation")

			err := poller.Run(cmd.Context(), client.PaymentCheck(requests.VerifyPayment{
				AppointmentID:    appointmentID,
				PaymentReference: reference,
			}))
			if errors.Is(err, cli.ErrPollTimeout) {
				return fmt.Errorf("payment %s still pending after %s, check again later", reference, timeout)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "appointment %s paid\n", appointmentID)
			return nil
		},
	}
	cmd.Flags().String("appointment", "", "Appointment id")
	cmd.Flags().String("reference", "", "Payment reference returned by initiate")
	cmd.Flags().Duration("interval", 3*time.Second, "Delay between verification attempts")
	cmd.Flags().Duration("timeout", 5*time.Minute, "Give up after this long")
	v.BindPFlag("interval", cmd.Flags().Lookup("interval"))
	v.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))
	return cmd
}

func tokenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development session token for a principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			principalID, _ := cmd.Flags().GetString("id")
			role, _ := cmd.Flags().GetString("role")
			hours, _ := cmd.Flags().GetInt("hours")
			switch role {
			case constvars.RolePatient, constvars.RoleDoctor, constvars.RoleAdmin:
			default:
				return fmt.Errorf("unknown role %q", role)
			}
			if principalID == "" {
				return errors.New("--id is required")
			}

			secret := v.GetString("jwt-secret")
			if secret == "" {
				secret = config.NewInternalConfig().JWT.Secret
			}
			token, err := utils.GenerateSessionJWT(principalID, role, secret, hours)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("id", "", "Principal id")
	cmd.Flags().String("role", constvars.RolePatient, "Principal role: patient, doctor or admin")
	cmd.Flags().Int("hours", 24, "Token lifetime in hours")
	cmd.Flags().String("jwt-secret", "", "Signing secret, defaults to JWT_SECRET")
	v.BindPFlag("jwt-secret", cmd.Flags().Lookup("jwt-secret"))
	v.BindEnv("jwt-secret", "JWT_SECRET")
	return cmd
}

func balanceCmd(log func() *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Query the merchant account balance from the payment gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			internalConfig := config.NewInternalConfig()
			gateway := payment_gateway.NewPaymentGateway(internalConfig, clock.New(), zap.NewNop())
			if gateway.IsMockMode() {
				log().Warn("gateway credentials incomplete, reporting the mock balance")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			balance, err := gateway.GetAccountBalance(ctx)
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(balance)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nTag: %s\n", Version, Tag)
		},
	}
}
