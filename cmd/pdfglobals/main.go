// Pdfglobals prints the global attributes of a PDF document as a
// single JSON line: version, metadata, dates and the permission names
// registered by the bridge.
//
// Usage: pdfglobals <file.pdf>, or "-" to read from stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"go-simpler.org/env"

	globals "github.com/johbar/go-poppler-globals"
	"github.com/johbar/go-poppler-globals/pkg/libpoppler"
)

var logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{}))

type config struct {
	// Path of the shared object file; can be empty (to use defaults)
	// or just the basename (e.g. "libpoppler-glib.so.8")
	LibPath string `env:"POPPLER_LIB_PATH"`
	// Log level (DEBUG, INFO, WARN, ERROR)
	LogLevelStr string `env:"POPPLER_LOG_LEVEL" default:"INFO"`
	LogLevel    slog.Level
	// Maximum size of a file to inspect
	MaxFileSize      string `env:"POPPLER_MAX_FILE_SIZE" default:"300MiB"`
	MaxFileSizeBytes uint64
}

type output struct {
	Library     string   `json:"library"`
	LibraryPath string   `json:"libraryPath"`
	PdfVersion  string   `json:"pdfVersion,omitempty"`
	Title       string   `json:"title,omitempty"`
	Author      string   `json:"author,omitempty"`
	Subject     string   `json:"subject,omitempty"`
	Keywords    string   `json:"keywords,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Producer    string   `json:"producer,omitempty"`
	Created     string   `json:"created,omitempty"`
	Modified    string   `json:"modified,omitempty"`
	Pages       int      `json:"pages"`
	PageWidth   float64  `json:"pageWidth,omitempty"`
	PageHeight  float64  `json:"pageHeight,omitempty"`
	Size        string   `json:"size"`
	Permissions []string `json:"permissions"`
}

func newConfigFromEnv() (*config, error) {
	var cfg config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(cfg.LogLevelStr)); err != nil {
		return nil, fmt.Errorf("parsing log level from env: %w", err)
	}
	maxSize, err := humanize.ParseBytes(cfg.MaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("parsing max file size from env: %w", err)
	}
	cfg.MaxFileSizeBytes = maxSize
	return &cfg, nil
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: pdfglobals <file.pdf|->")
		os.Exit(64)
	}
	cfg, err := newConfigFromEnv()
	if err != nil {
		logger.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	globals.SetDebugErrorFunc(func(message string) {
		logger.Warn("Poppler", "msg", message)
	})

	libPath, err := libpoppler.InitLib(cfg.LibPath)
	if err != nil {
		logger.Error("Could not load libpoppler-glib", "err", err)
		os.Exit(1)
	}
	logger.Debug("Library loaded", "path", libPath, "version", libpoppler.Version())

	data, err := readInput(os.Args[1], cfg.MaxFileSizeBytes)
	if err != nil {
		logger.Error("Could not read input", "err", err)
		os.Exit(1)
	}
	doc, err := libpoppler.Load(data)
	if err != nil {
		logger.Error("Could not open document", "err", err)
		os.Exit(2)
	}
	defer doc.Close()

	info := doc.Info()
	out := output{
		Library:     libpoppler.Version(),
		LibraryPath: libPath,
		PdfVersion:  info.PdfVersion,
		Title:       info.Title,
		Author:      info.Author,
		Subject:     info.Subject,
		Keywords:    info.Keywords,
		Creator:     info.Creator,
		Producer:    info.Producer,
		Pages:       info.Pages,
		Size:        humanize.Bytes(uint64(len(data))),
		Permissions: doc.Permissions().Names(),
	}
	if !info.Created.IsZero() {
		out.Created = globals.FormatDate(info.Created)
	}
	if !info.Modified.IsZero() {
		out.Modified = globals.FormatDate(info.Modified)
	}
	if p := doc.GetPage(0); p != nil {
		out.PageWidth, out.PageHeight = p.Size()
		p.Close()
	}

	line, err := json.Marshal(out)
	if err != nil {
		logger.Error("Could not serialize metadata", "err", err)
		os.Exit(1)
	}
	os.Stdout.Write(line)
	fmt.Println()
}

func readInput(path string, maxSize uint64) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, int64(maxSize)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > maxSize {
		return nil, fmt.Errorf("input exceeds %s", humanize.Bytes(maxSize))
	}
	return data, nil
}
