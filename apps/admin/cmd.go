package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/report"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf   *core.Config
	repSvc *report.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  genreport -student NAME -month YYYY-MM - regenerate a student's monthly report")
	fmt.Println("  teachertoken - print the Authorization header for the teacher endpoints")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	genReportCmd := flag.NewFlagSet("genreport", flag.ExitOnError)
	genReportStudent := genReportCmd.String("student", "", "The student's name, as registered.")
	genReportMonth := genReportCmd.String("month", "", "The report month in YYYY-MM format.")

	switch args[1] {
	case "genreport":
		if err := genReportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *genReportStudent == "" || *genReportMonth == "" {
			genReportCmd.Usage()
			return errHelp
		}
		month, err := core.ParseMonth(*genReportMonth)
		if err != nil {
			return err
		}
		return cli.genReport(*genReportStudent, month)
	case "teachertoken":
		fmt.Print("Enter teacher token:")
		token, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(token) == 0 {
			cli.printUsage()
			return errHelp
		}
		fmt.Printf("Authorization: Bearer %s\n", token)
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}
