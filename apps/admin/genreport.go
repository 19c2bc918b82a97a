package main

import (
	"context"
	"fmt"

	"github.com/jaykayhn/jindo/core"
)

func (cli *commandLine) genReport(studentName string, month core.Month) error {
	ctx := context.Background()
	rep, err := cli.repSvc.Generate(ctx, core.CleanString(studentName), month)
	if err != nil {
		return err
	}
	fmt.Printf("report generated: %s (%s)\n%s\n", rep.StudentName, rep.Month, rep.URL)
	return nil
}
