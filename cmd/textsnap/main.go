// textsnap converts UTF-8 text to textbuf snapshot frames and back.
//
// Encoding reads UTF-8 text, builds it into a textbuf builder and writes a
// snapshot frame. Decoding verifies a frame and writes its text as UTF-8.
//
// Usage:
//
//	textsnap [--config file] [--compression name] [--in file] [--out file]
//	textsnap --decode [--in file] [--out file]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/arloliu/textbuf/builder"
	"github.com/arloliu/textbuf/config"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/snapshot"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	decode      bool
	configPath  string
	compression string
	inPath      string
	outPath     string
	logLevel    string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var f flags

	flagSet := pflag.NewFlagSet("textsnap", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&f.decode, "decode", "d", false, "decode a snapshot frame to UTF-8 text")
	flagSet.StringVarP(&f.configPath, "config", "c", "", "TOML configuration file")
	flagSet.StringVar(&f.compression, "compression", "", "payload compression: none, zstd, s2 or lz4 (overrides config)")
	flagSet.StringVarP(&f.inPath, "in", "i", "-", "input file, - for stdin")
	flagSet.StringVarP(&f.outPath, "out", "o", "-", "output file, - for stdout")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger := config.NewLogger(stderr, cfg.Level())

	input, err := readInput(f.inPath, stdin)
	if err != nil {
		return err
	}

	var output []byte
	if f.decode {
		output, err = decode(input)
	} else {
		output, err = encode(cfg, logger, input)
	}
	if err != nil {
		return err
	}

	logger.Info("done", "input_bytes", len(input), "output_bytes", len(output), "decode", f.decode)

	return writeOutput(f.outPath, stdout, output)
}

func loadConfig(f flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if f.compression != "" {
		cfg.Compression = f.compression
	}
	if f.logLevel != "" {
		cfg.LogLevel = config.LogLevel(f.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func encode(cfg *config.Config, logger *slog.Logger, input []byte) ([]byte, error) {
	b, err := builder.New(cfg.BuilderOptions(logger)...)
	if err != nil {
		return nil, err
	}
	if _, err := b.Write(input); err != nil {
		return nil, err
	}

	enc, err := snapshot.NewEncoder(cfg.SnapshotOptions()...)
	if err != nil {
		return nil, err
	}

	frame, err := enc.EncodeBuilder(b)
	if err != nil {
		return nil, err
	}

	logger.Debug("encoded snapshot",
		"units", b.Len(),
		"coder", b.Coder(),
		"compression", enc.Compression())

	return frame, nil
}

func decode(input []byte) ([]byte, error) {
	t, err := snapshot.Decode(input)
	if err != nil {
		return nil, err
	}
	if t.Coder() == format.Compact {
		return t.Bytes(), nil
	}

	return []byte(t.String()), nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return data, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
