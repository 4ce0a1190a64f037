package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gest-dev/pagseguro-go/internal/domain/charge"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "pagseguro",
		Short:         "Create PagSeguro PIX and boleto charges from YAML files",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(chargeCmd(charge.KindPix, "Create a PIX charge with a QR code"))
	rootCmd.AddCommand(chargeCmd(charge.KindBoleto, "Create a boleto charge"))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
