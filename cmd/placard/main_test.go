package main

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/go-placard/placard"
	placardcli "github.com/go-placard/placard/cli"
	"github.com/urfave/cli/v2"
)

func dummyCmd(name string) *cli.Command {
	return &cli.Command{
		Name: name,
		Action: func(c *cli.Context) error {
			return nil
		},
	}
}

func failingCmd(name string) *cli.Command {
	return &cli.Command{
		Name: name,
		Action: func(c *cli.Context) error {
			return errors.New("intentional failure")
		},
	}
}

func swapCommands(t *testing.T, build func(name string) *cli.Command) {
	origDev := placardcli.DevCommand
	origProd := placardcli.ProdCommand
	origCheck := placardcli.CheckCommand
	origInfo := placardcli.InfoCommand

	placardcli.DevCommand = build("dev")
	placardcli.ProdCommand = build("prod")
	placardcli.CheckCommand = build("check")
	placardcli.InfoCommand = build("info")

	t.Cleanup(func() {
		placardcli.DevCommand = origDev
		placardcli.ProdCommand = origProd
		placardcli.CheckCommand = origCheck
		placardcli.InfoCommand = origInfo
	})
}

func Test_runApp_SuccessfulCommands(t *testing.T) {
	swapCommands(t, dummyCmd)

	commands := []string{"dev", "prod", "check", "info"}
	for _, cmd := range commands {
		t.Run(cmd, func(t *testing.T) {
			err := runApp([]string{"placard", cmd})
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
		})
	}
}

func Test_runApp_ErrorCommand(t *testing.T) {
	swapCommands(t, failingCmd)

	err := runApp([]string{"placard", "dev"})
	if err == nil || err.Error() != "intentional failure" {
		t.Fatalf("Expected error 'intentional failure', got: %v", err)
	}
}

func Test_runApp_BareRunStartsWithConfigDrivenEnv(t *testing.T) {
	original := placard.Start
	var recorded *placard.RuntimeConfig
	placard.Start = func(cfg placard.RuntimeConfig) {
		recorded = &cfg
	}
	t.Cleanup(func() { placard.Start = original })

	err := runApp([]string{"placard", "--host", "127.0.0.1", "--port", "3000"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if recorded == nil {
		t.Fatal("expected Start to be called")
	}
	if recorded.Env != "" {
		t.Errorf("expected empty Env so the config decides, got %q", recorded.Env)
	}
	if recorded.Host != "127.0.0.1" || recorded.Port != 3000 {
		t.Errorf("unexpected config: %+v", recorded)
	}
}

func Test_runApp_UnknownCommand(t *testing.T) {
	err := runApp([]string{"placard", "bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("Expected unknown command error, got: %v", err)
	}
}

func Test_main_LogFatalPath(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "invalidCommand")
	cmd.Env = append(os.Environ(), "BE_CRASHER=1")

	output, err := cmd.CombinedOutput()

	if exitErr, ok := err.(*exec.ExitError); !ok {
		t.Fatalf("Expected exit error, got: %v", err)
	} else if exitErr.ExitCode() == 0 {
		t.Fatalf("Expected non-zero exit code from main")
	}

	if !strings.Contains(string(output), "unknown command") {
		t.Errorf("Expected CLI error output, got: %s", output)
	}
}
