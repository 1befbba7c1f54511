// Command selc compiles a selector-markup source file to an HTML document.
// It is a thin wrapper: read, Parse, Render, write.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/selhtml/selhtml"
)

func main() {
	cmd := &cli.Command{
		Name:      "selc",
		Usage:     "compile selector markup to HTML",
		ArgsUsage: "[input file, stdin when omitted]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write HTML to `FILE` instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	name := cmd.Args().First()
	source, err := readSource(name)
	if err != nil {
		return err
	}
	if name == "" {
		name = "stdin"
	}
	log.Debug("compiling", zap.String("file", name), zap.Int("bytes", len(source)))

	out, err := selhtml.Compile(source, name)
	if err != nil {
		var se *selhtml.SyntaxError
		if errors.As(err, &se) && se.HTMLContext() != "" {
			log.Debug("parse failed", zap.String("context", se.HTMLContext()))
		}
		return err
	}

	if dst := cmd.String("output"); dst != "" {
		log.Debug("writing", zap.String("file", dst), zap.Int("bytes", len(out)))
		return os.WriteFile(dst, []byte(out), 0o644)
	}
	_, err = io.WriteString(os.Stdout, out)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func readSource(name string) (string, error) {
	if name == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}
