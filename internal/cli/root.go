package cli

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// Execute runs the relaxicons CLI with args and returns the process exit
// code. Logs go to logOut; errors not already reported by a command are
// printed once to stderr.
//
// Example:
//
//	func main() {
//	    ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	    defer cancel()
//	    os.Exit(cli.Execute(ctx, os.Args[1:], os.Stderr))
//	}
func Execute(ctx context.Context, args []string, logOut io.Writer) int {
	c := New(logOut, LogInfo)
	return c.Run(ctx, args)
}

// Run executes the command tree for args.
func (c *CLI) Run(ctx context.Context, args []string) int {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return CodeOK
	}

	code := ExitCode(err)
	var ee *ExitError
	if stderrors.As(err, &ee) && ee.Reported {
		return code
	}
	if code == CodeInterrupted {
		printError("Interrupted")
		return code
	}
	printError("%s", errors.UserMessage(err))
	return code
}
