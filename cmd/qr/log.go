package main

import (
	"io"

	"gopkg.in/op/go-logging.v1"
)

var log = logging.MustGetLogger("qr")

// setupLog sends log messages to w, formatted, filtered by level.
func setupLog(w io.Writer, level logging.Level) {
	logFmt := logging.MustStringFormatter("%{program}: %{level:.4s} %{message}")
	base := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(base, logFmt)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	log.SetBackend(leveled)
}

// fatal logs err and exits.
func fatal(err error) {
	log.Critical("%v", err)
	exit(1)
}
