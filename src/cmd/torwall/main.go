package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/maksimkurb/torwall/src/internal/commands"
	"github.com/maksimkurb/torwall/src/internal/domain"
	"github.com/maksimkurb/torwall/src/internal/errors"
	"github.com/maksimkurb/torwall/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := commands.NewAppContext(domain.NewDefaultDependencies())
	ctx.Version = fmt.Sprintf("%s (Commit: %s, Date: %s)", version, commit, date)

	if err := commands.Execute(os.Args[1:], ctx); err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) && e.Code == errors.ErrCodePrivilege {
			fmt.Fprintln(os.Stderr, e.Message)
		} else {
			log.Errorf("%v", err)
		}
		os.Exit(errors.ExitCode(err))
	}
}
