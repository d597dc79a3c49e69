package cmd

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lpwan-io/cayennelpp"
	"github.com/lpwan-io/cayennelpp/internal/bridge"
	"github.com/lpwan-io/cayennelpp/internal/config"
	"github.com/lpwan-io/cayennelpp/internal/monitoring"
)

var br *bridge.Bridge

func run(cmd *cobra.Command, args []string) error {
	tasks := []func() error{
		setLogLevel,
		printStartMessage,
		setupMonitoring,
		setupBridge,
	}

	for _, t := range tasks {
		if err := t(); err != nil {
			log.Fatal(err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	exitChan := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	log.WithField("signal", <-sigChan).Info("signal received")
	go func() {
		log.Warning("stopping lpp-bridge")
		if err := br.Close(); err != nil {
			log.Fatal(err)
		}
		exitChan <- struct{}{}
	}()
	select {
	case <-exitChan:
	case s := <-sigChan:
		log.WithField("signal", s).Info("signal received, stopping immediately")
	}

	return nil
}

func setLogLevel() error {
	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))
	return nil
}

func printStartMessage() error {
	log.WithFields(log.Fields{
		"version": version,
	}).Info("starting lpp-bridge")
	return nil
}

func setupMonitoring() error {
	return monitoring.Setup(config.C)
}

func setupBridge() error {
	var err error
	br, err = bridge.NewBridge(config.C, cayennelpp.NewDecoder())
	return err
}
