package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexcatdad/exepath/internal/exepath"
)

var errDoctorFailed = errors.New("one or more checks failed")

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that this platform can report the executable path",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			allOK := true
			report := func(name string, ok bool, msg string) {
				mark := "ok"
				if !ok {
					mark = "FAIL"
					allOK = false
				}
				fmt.Fprintf(cc.OutOrStdout(), "%-10s [%4s] %s\n", name, mark, msg)
			}

			fmt.Fprintf(cc.OutOrStdout(), "%-10s        %s\n", "mechanism", exepath.Mechanism())

			ok, msg := doctorCheckPlatform()
			report("platform", ok, msg)

			if p, ok := exepath.Resolve(); ok {
				report("resolve", true, p)
			} else {
				report("resolve", false, ErrUnknownPath.Error())
			}

			if !allOK {
				return errDoctorFailed
			}
			return nil
		},
	}
}
