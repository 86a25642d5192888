package middleware

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Saver writes pending dictionary changes to storage
type Saver interface {
	Save() error
}

// Persist creates middleware that saves the dictionary after the wrapped
// action succeeds. A failed action leaves storage untouched.
func Persist(saver Saver, logger *zap.Logger) func(cli.ActionFunc) cli.ActionFunc {
	return func(next cli.ActionFunc) cli.ActionFunc {
		return func(c *cli.Context) error {
			if err := next(c); err != nil {
				return err
			}

			if err := saver.Save(); err != nil {
				command := ""
				if c.Command != nil {
					command = c.Command.Name
				}
				logger.Error("Failed to save dictionary after command",
					zap.String("command", command),
					zap.Error(err),
				)
				return fmt.Errorf("failed to save dictionary: %w", err)
			}

			return nil
		}
	}
}
